package a1art

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// RegionChina selects the China deployment of A1.art; status queries carry an
// additional "section: cn" header when it is configured.
const RegionChina = "cn"

type Client struct {
	baseURL    string
	apiKey     string
	region     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// envelope is the JSON wrapper A1.art returns on every endpoint. Code zero
// means success; msg_cn carries the localized error text, msg the fallback.
type envelope struct {
	Code  int             `json:"code"`
	MsgCN string          `json:"msg_cn"`
	Msg   string          `json:"msg"`
	Data  json.RawMessage `json:"data"`
}

// UploadResult is the remote location of an uploaded asset.
type UploadResult struct {
	ImageURL string `json:"imageUrl"`
	Path     string `json:"path"`
}

// CnetRef pairs an uploaded asset with the control-net form it steers.
type CnetRef struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Path     string `json:"path"`
}

type SizeRef struct {
	SizeID string `json:"sizeId"`
}

// GenerateRequest is the payload for the generation endpoint.
type GenerateRequest struct {
	Cnet        []CnetRef `json:"cnet"`
	Description []string  `json:"description"`
	StyleID     string    `json:"styleId"`
	Size        SizeRef   `json:"size"`
	AppID       string    `json:"appId"`
	VersionID   string    `json:"versionId"`
	GenerateNum int       `json:"generateNum"`
}

type generateData struct {
	TaskID string `json:"taskId"`
}

// TaskRecord is the raw provider task as returned by the status endpoint.
// State codes: 10 completed, 20 failed, 30 processing.
type TaskRecord struct {
	ID         string   `json:"id"`
	State      int      `json:"state"`
	Images     []string `json:"images"`
	StartDate  int64    `json:"startDate"`
	FinishDate int64    `json:"finishDate"`
	CreateDate int64    `json:"createDate"`
}

func NewClient(baseURL, apiKey, region string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		region:  region,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With().Str("component", "a1art").Logger(),
	}
}

// UploadImage streams the file at localPath as multipart form content to the
// upload endpoint and returns the remote asset location.
func (c *Client) UploadImage(localPath string) (*UploadResult, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, &UnavailableError{Op: "upload", Err: fmt.Errorf("failed to open file: %w", err)}
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return nil, &UnavailableError{Op: "upload", Err: fmt.Errorf("failed to build form: %w", err)}
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, &UnavailableError{Op: "upload", Err: fmt.Errorf("failed to read file: %w", err)}
	}
	if err := writer.Close(); err != nil {
		return nil, &UnavailableError{Op: "upload", Err: fmt.Errorf("failed to finalize form: %w", err)}
	}

	url := c.baseURL + "/images/upload"
	req, err := http.NewRequest("POST", url, &buf)
	if err != nil {
		return nil, &UnavailableError{Op: "upload", Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("apiKey", c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	env, err := c.do(req, "upload")
	if err != nil {
		return nil, err
	}
	if env.Code != 0 {
		msg := providerMessage(env)
		c.logger.Error().Str("op", "upload").Int("code", env.Code).Str("msg", msg).Msg("provider rejected upload")
		return nil, &RejectedError{Message: msg}
	}

	var result UploadResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, &UnavailableError{Op: "upload", Err: fmt.Errorf("failed to decode data: %w", err)}
	}

	c.logger.Info().Str("op", "upload").Str("path", result.Path).Msg("image uploaded")
	return &result, nil
}

// Generate submits a generation job and returns the provider task id. A 200
// response is still validated for a zero envelope code and a data.taskId; the
// distinct failure messages are part of the caller-visible contract.
func (c *Client) Generate(genReq GenerateRequest) (string, error) {
	jsonData, err := json.Marshal(genReq)
	if err != nil {
		return "", &UnavailableError{Op: "generate", Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	url := c.baseURL + "/images/generate"
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &UnavailableError{Op: "generate", Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("apiKey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")

	c.logger.Info().Str("op", "generate").Str("app_id", genReq.AppID).Int("generate_num", genReq.GenerateNum).Msg("submitting generation job")

	env, err := c.do(req, "generate")
	if err != nil {
		return "", err
	}
	if env.Code != 0 {
		msg := providerMessage(env)
		c.logger.Error().Str("op", "generate").Int("code", env.Code).Str("msg", msg).Msg("provider rejected generation")
		return "", &RejectedError{Message: msg}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return "", &RejectedError{Message: "response missing data field"}
	}

	var data generateData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", &UnavailableError{Op: "generate", Err: fmt.Errorf("failed to decode data: %w", err)}
	}
	if data.TaskID == "" {
		return "", &RejectedError{Message: "response missing task id"}
	}

	c.logger.Info().Str("op", "generate").Str("task_id", data.TaskID).Msg("generation job created")
	return data.TaskID, nil
}

// GetTask retrieves the raw task record for a previously submitted job.
func (c *Client) GetTask(taskID string) (*TaskRecord, error) {
	url := c.baseURL + "/tasks/" + taskID
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, &UnavailableError{Op: "task status", Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("apiKey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.region == RegionChina {
		req.Header.Set("section", RegionChina)
	}

	env, err := c.do(req, "task status")
	if err != nil {
		return nil, err
	}
	if env.Code != 0 {
		msg := providerMessage(env)
		c.logger.Error().Str("op", "task status").Str("task_id", taskID).Int("code", env.Code).Str("msg", msg).Msg("provider rejected status query")
		return nil, &RejectedError{Message: msg}
	}

	var record TaskRecord
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, &UnavailableError{Op: "task status", Err: fmt.Errorf("failed to decode data: %w", err)}
	}

	return &record, nil
}

// do executes the request and decodes the provider envelope. Non-200 statuses
// surface the localized message when the body carries one; a body that is not
// a JSON envelope is a transport-class failure.
func (c *Client) do(req *http.Request, op string) (*envelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Str("op", op).Err(err).Msg("request failed")
		return nil, &UnavailableError{Op: op, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		if resp.StatusCode != http.StatusOK {
			return nil, &RejectedError{Message: fmt.Sprintf("provider returned status %d", resp.StatusCode)}
		}
		return nil, &RejectedError{Message: "empty response from provider"}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &RejectedError{Message: fmt.Sprintf("provider returned status %d", resp.StatusCode)}
		}
		return nil, &UnavailableError{Op: op, Err: fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RejectedError{Message: providerMessage(&env)}
	}

	return &env, nil
}

func providerMessage(env *envelope) string {
	if env.MsgCN != "" {
		return env.MsgCN
	}
	if env.Msg != "" {
		return env.Msg
	}
	return "unknown provider error"
}
