package models

// UploadInfo is the remote location of the uploaded source image, echoed
// back so callers can reuse the asset.
type UploadInfo struct {
	ImageURL string `json:"image_url"`
	Path     string `json:"path"`
}

type CreateTaskResponse struct {
	Status       string     `json:"status"`
	TaskID       string     `json:"task_id"`
	UploadResult UploadInfo `json:"upload_result"`
	LocalPath    string     `json:"local_path"`
}

type GenerateTaskResponse struct {
	Status       string     `json:"status"`
	TaskID       string     `json:"task_id"`
	TemplateID   int        `json:"template_id"`
	TemplateName string     `json:"template_name"`
	UploadResult UploadInfo `json:"upload_result"`
	LocalPath    string     `json:"local_path"`
}

type TemplateInfo struct {
	TemplateID    int     `json:"template_id"`
	Name          string  `json:"name"`
	AppID         string  `json:"app_id"`
	VersionID     string  `json:"version_id"`
	CnetFormID    string  `json:"cnet_form_id"`
	TemplateImage *string `json:"template_image"`
}

type TemplateListResponse struct {
	Status    string         `json:"status"`
	Count     int            `json:"count"`
	Templates []TemplateInfo `json:"templates"`
}

// StatusResponse reports the normalized task lifecycle. State carries the
// raw provider code; StateText is one of COMPLETED, FAILED, PROCESSING or
// UNKNOWN. Images is non-empty only for completed tasks.
type StatusResponse struct {
	Status     string   `json:"status"`
	ID         string   `json:"id"`
	State      int      `json:"state"`
	StateText  string   `json:"state_text"`
	Images     []string `json:"images"`
	StartDate  int64    `json:"startDate,omitempty"`
	FinishDate int64    `json:"finishDate,omitempty"`
	CreateDate int64    `json:"createDate,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
