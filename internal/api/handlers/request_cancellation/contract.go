package request_cancellation

import "context"

type ReservationService interface {
	RequestCancellation(ctx context.Context, reservationID int64, requesterID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
