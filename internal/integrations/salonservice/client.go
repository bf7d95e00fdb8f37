package salonservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с SalonService (каталог услуг и справочник персонала)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента SalonService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetActiveServices получает список активных услуг каталога
func (c *Client) GetActiveServices(ctx context.Context) ([]Service, error) {
	url := fmt.Sprintf("%s/internal/services?active=true", c.baseURL)

	var resp servicesResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	return resp.Services, nil
}

// GetStaffMembers получает список сотрудников с их рабочими днями недели
func (c *Client) GetStaffMembers(ctx context.Context) ([]StaffMember, error) {
	url := fmt.Sprintf("%s/internal/staff", c.baseURL)

	var resp staffResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	return resp.Staff, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ в out
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
