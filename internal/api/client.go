// Package api is the HTTP client for the remote task store. It mirrors
// the server's REST surface one method per endpoint and converts every
// non-2xx response into an APIError carrying the human-readable message
// the error surface displays.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// DefaultBaseURL is where the backend listens when run locally.
const DefaultBaseURL = "http://localhost:8080"

// defaultTimeout bounds ordinary calls. Generation runs a language
// model server-side and gets a much longer leash.
const (
	defaultTimeout  = 15 * time.Second
	generateTimeout = 2 * time.Minute
)

// APIError is a non-2xx response from the task store.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the remote task store. Generation gets its own
// http.Client: http.Client.Timeout caps the whole request no matter what
// deadline the call's context carries, so the ordinary client's short
// cap must not apply to the slow generate endpoint.
type Client struct {
	baseURL string
	httpc   *http.Client
	genc    *http.Client
}

// New returns a client for the given base URL ("" uses DefaultBaseURL).
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
		genc:    &http.Client{Timeout: generateTimeout},
	}
}

// Tasks fetches the entire task collection.
func (c *Client) Tasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask submits a normalized task (ID ignored server-side) and
// returns the created task with its server-assigned ID.
func (c *Client) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	var created model.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", t, &created); err != nil {
		return model.Task{}, err
	}
	return created, nil
}

// UpdateTask submits a full replacement of every task field.
func (c *Client) UpdateTask(ctx context.Context, id int64, t model.Task) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), t, nil)
}

// UpdateStatus submits only the status field.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status model.Status) error {
	body := struct {
		Status model.Status `json:"status"`
	}{status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/status", id), body, nil)
}

// UpdateSprint submits only the sprint-membership flag.
func (c *Client) UpdateSprint(ctx context.Context, id int64, inSprint bool) error {
	body := struct {
		InSprint bool `json:"in_sprint"`
	}{inSprint}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/sprint", id), body, nil)
}

// DeleteTask removes a task permanently.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// GenerateTasks asks the server to extract tasks from free-text meeting
// notes. The response payload is deliberately discarded: callers reload
// the collection instead of trusting it, and a partially failed batch
// still leaves whatever succeeded in the store.
func (c *Client) GenerateTasks(ctx context.Context, meetingNotes string) error {
	body := struct {
		MeetingNotes string `json:"meeting_notes"`
	}{meetingNotes}
	return c.doWith(ctx, c.genc, http.MethodPost, "/tasks/generate", body, nil)
}

// Projects lists the selectable projects (sentinel row included).
func (c *Client) Projects(ctx context.Context) ([]model.Option, error) {
	var opts []model.Option
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// CreateProject adds a selectable project.
func (c *Client) CreateProject(ctx context.Context, name string) (model.Option, error) {
	return c.createOption(ctx, "/projects", name)
}

// DeleteProject removes a project option. The sentinel row is refused
// locally; the server enforces the same rule.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	if id == model.SentinelOptionID {
		return &APIError{StatusCode: http.StatusBadRequest, Message: "cannot delete default project 'General'"}
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}

// Assignees lists the selectable assignees (sentinel row included).
func (c *Client) Assignees(ctx context.Context) ([]model.Option, error) {
	var opts []model.Option
	if err := c.do(ctx, http.MethodGet, "/assignees", nil, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// CreateAssignee adds a selectable assignee.
func (c *Client) CreateAssignee(ctx context.Context, name string) (model.Option, error) {
	return c.createOption(ctx, "/assignees", name)
}

// DeleteAssignee removes an assignee option, refusing the sentinel row.
func (c *Client) DeleteAssignee(ctx context.Context, id int64) error {
	if id == model.SentinelOptionID {
		return &APIError{StatusCode: http.StatusBadRequest, Message: "cannot delete default assignee 'Unassigned'"}
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/assignees/%d", id), nil, nil)
}

func (c *Client) createOption(ctx context.Context, path, name string) (model.Option, error) {
	body := struct {
		Name string `json:"name"`
	}{name}
	var opt model.Option
	if err := c.do(ctx, http.MethodPost, path, body, &opt); err != nil {
		return model.Option{}, err
	}
	return opt, nil
}

// do performs one request/response cycle: marshal the body if present,
// issue the request, and either decode a 2xx payload into out or turn
// the failure into an APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.doWith(ctx, c.httpc, method, path, body, out)
}

func (c *Client) doWith(ctx context.Context, hc *http.Client, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("contacting server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorFrom extracts the server's error message. The body's optional
// `error` field is preferred; otherwise a message is synthesized from
// the status code.
func (c *Client) errorFrom(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
			return apiErr
		}
	}
	apiErr.Message = fmt.Sprintf("server returned %s", resp.Status)
	return apiErr
}
