// Package remote habla con la API HTTP de med-schedule. Lo usa la TUI cuando
// se configura api.url.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"med-schedule/internal/domain/medicines"
	"med-schedule/internal/domain/schedule"
	"med-schedule/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client
}

func New(c *httpclient.Client) *Client {
	return &Client{http: c}
}

func (c *Client) List(ctx context.Context) ([]medicines.Medicine, error) {
	var resp []medicines.MedicineResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/medicines", nil, &resp); err != nil {
		return nil, mapErr(err)
	}
	out := make([]medicines.Medicine, 0, len(resp))
	for _, r := range resp {
		out = append(out, medicines.FromResponse(r))
	}
	return out, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status medicines.Status, _ string) (medicines.Medicine, error) {
	var resp medicines.MedicineResponse
	path := "/medicines/" + url.PathEscape(id) + "/status"
	if err := c.http.DoJSON(ctx, http.MethodPatch, path, map[string]any{"status": status}, &resp); err != nil {
		return medicines.Medicine{}, mapErr(err)
	}
	return medicines.FromResponse(resp), nil
}

func (c *Client) UpdateSlotStatus(ctx context.Context, slotTime string, status medicines.Status) ([]medicines.Medicine, error) {
	var resp schedule.TimeSlotResponse
	path := "/schedule/" + url.PathEscape(slotTime) + "/status"
	if err := c.http.DoJSON(ctx, http.MethodPost, path, map[string]any{"status": status}, &resp); err != nil {
		return nil, mapErr(err)
	}
	out := make([]medicines.Medicine, 0, len(resp.Medicines))
	for _, r := range resp.Medicines {
		out = append(out, medicines.FromResponse(r))
	}
	return out, nil
}

func (c *Client) Capture(ctx context.Context, source string) (medicines.Medicine, error) {
	var resp medicines.MedicineResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/medicines/capture", map[string]any{"source": source}, &resp); err != nil {
		return medicines.Medicine{}, mapErr(err)
	}
	return medicines.FromResponse(resp), nil
}

// mapErr traduce status HTTP a los errores del dominio.
func mapErr(err error) error {
	switch httpclient.StatusCode(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", medicines.ErrNotFound, err)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %v", medicines.ErrInvalidInput, err)
	default:
		return err
	}
}
