package services

import (
	"github.com/rs/zerolog"

	"a1art-gateway/internal/a1art"
	"a1art-gateway/internal/storage"
	"a1art-gateway/internal/templates"
)

// TaskService coordinates the three-step A1.art workflow (persist locally,
// upload asset, submit generation) and normalizes task status queries. It
// keeps no state between calls; the provider owns the task records.
type TaskService struct {
	client    *a1art.Client
	store     *storage.Local
	templates *templates.Store
	logger    zerolog.Logger
}

// CreateParams are the raw provider parameters for task creation.
type CreateParams struct {
	AppID       string
	VersionID   string
	CnetFormID  string
	GenerateNum int
}

// CreateResult is everything task creation produced: the provider task
// handle plus the intermediate upload result and local path, which the
// API echoes back to the caller.
type CreateResult struct {
	TaskID    string
	Upload    a1art.UploadResult
	LocalPath string
	Template  *templates.Template
}

// TaskStatus is the normalized view of a provider task record.
type TaskStatus struct {
	ID         string
	State      int
	StateText  string
	Images     []string
	StartDate  int64
	FinishDate int64
	CreateDate int64
}

func NewTaskService(client *a1art.Client, store *storage.Local, tpls *templates.Store, logger zerolog.Logger) *TaskService {
	return &TaskService{
		client:    client,
		store:     store,
		templates: tpls,
		logger:    logger.With().Str("component", "tasks").Logger(),
	}
}

// CreateTask runs the creation sequence with caller-supplied parameters.
// Steps are strictly ordered; the first failure aborts the whole operation
// and propagates as-is. The remote side is not compensated on a late
// failure.
func (s *TaskService) CreateTask(data []byte, filename string, params CreateParams) (*CreateResult, error) {
	return s.create(data, filename, params, nil)
}

// CreateFromTemplate resolves the template before any file is persisted or
// any remote call is made, so an unknown id costs nothing remotely.
// Template-sourced tasks always generate a single image regardless of any
// caller-supplied count.
func (s *TaskService) CreateFromTemplate(data []byte, filename string, templateID int) (*CreateResult, error) {
	tpl, err := s.templates.Resolve(templateID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("template_id", templateID).Str("template", tpl.Name).Msg("creating task from template")

	params := CreateParams{
		AppID:       tpl.AppID,
		VersionID:   tpl.VersionID,
		CnetFormID:  tpl.CnetFormID,
		GenerateNum: 1,
	}
	return s.create(data, filename, params, &tpl)
}

func (s *TaskService) create(data []byte, filename string, params CreateParams, tpl *templates.Template) (*CreateResult, error) {
	localPath, err := s.store.Save(data, filename)
	if err != nil {
		s.logger.Error().Str("filename", filename).Err(err).Msg("failed to persist upload")
		return nil, err
	}
	s.logger.Info().Str("path", localPath).Msg("file saved")

	upload, err := s.client.UploadImage(localPath)
	if err != nil {
		s.logger.Error().Str("path", localPath).Err(err).Msg("asset upload failed")
		return nil, err
	}

	cnet := []a1art.CnetRef{{
		ID:       params.CnetFormID,
		ImageURL: upload.ImageURL,
		Path:     upload.Path,
	}}

	taskID, err := s.client.Generate(a1art.GenerateRequest{
		Cnet:        cnet,
		Description: []string{},
		StyleID:     "",
		Size:        a1art.SizeRef{SizeID: ""},
		AppID:       params.AppID,
		VersionID:   params.VersionID,
		GenerateNum: params.GenerateNum,
	})
	if err != nil {
		s.logger.Error().Str("app_id", params.AppID).Err(err).Msg("generation submit failed")
		return nil, err
	}

	s.logger.Info().Str("task_id", taskID).Msg("task created")

	return &CreateResult{
		TaskID:    taskID,
		Upload:    *upload,
		LocalPath: localPath,
		Template:  tpl,
	}, nil
}

// GetStatus fetches the current provider record for a task and normalizes it.
// Each call is a fresh derivation; nothing is cached. Image URLs are exposed
// only for completed tasks, every other state (including unrecognized codes)
// reports an empty list.
func (s *TaskService) GetStatus(taskID string) (*TaskStatus, error) {
	record, err := s.client.GetTask(taskID)
	if err != nil {
		s.logger.Error().Str("task_id", taskID).Err(err).Msg("status query failed")
		return nil, err
	}

	status := &TaskStatus{
		ID:         record.ID,
		State:      record.State,
		StateText:  StateText(record.State),
		Images:     []string{},
		StartDate:  record.StartDate,
		FinishDate: record.FinishDate,
		CreateDate: record.CreateDate,
	}
	if record.State == StateCompleted && record.Images != nil {
		status.Images = record.Images
	}

	s.logger.Info().Str("task_id", taskID).Str("state", status.StateText).Int("images", len(status.Images)).Msg("task status")
	return status, nil
}
