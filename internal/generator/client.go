package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/config"
	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/planner"
)

// Response is the generation collaborator's reply. Which fields are
// populated varies by its code path: some paths embed the shift list,
// some only return the schedule id, some neither.
type Response struct {
	ScheduleID int64          `json:"schedule_id"`
	WeekStart  string         `json:"week_start"`
	WeekEnd    string         `json:"week_end"`
	Message    string         `json:"message"`
	Shifts     []domain.Shift `json:"shifts"`
}

// Client talks to the external schedule-generation service. The
// algorithm behind it is opaque; only the request and response shapes
// are ours.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		url:   cfg.Generator.URL,
		token: cfg.Generator.Token,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Generator.RequestTimeout) * time.Second,
		},
	}
}

// Generate submits week start and preferences as a single multipart
// request: a "week_start" ISO date field and a "preferences" field
// holding the JSON-encoded barista-id -> preference map.
func (c *Client) Generate(ctx context.Context, weekStart time.Time, prefs planner.PreferenceSet) (*Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("week_start", weekStart.Format("2006-01-02")); err != nil {
		return nil, err
	}

	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return nil, err
	}
	if err := writer.WriteField("preferences", string(prefsJSON)); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("generation service returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var generated Response
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return nil, fmt.Errorf("malformed generation response: %w", err)
	}

	return &generated, nil
}
