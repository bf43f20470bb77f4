package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"a1art-gateway/internal/config"
	"a1art-gateway/internal/models"
	"a1art-gateway/internal/services"
)

type TasksHandler struct {
	tasks *services.TaskService
	cfg   *config.Config
}

func NewTasksHandler(tasks *services.TaskService, cfg *config.Config) *TasksHandler {
	return &TasksHandler{
		tasks: tasks,
		cfg:   cfg,
	}
}

// Create godoc
// @Summary     Create a generation task with raw parameters
// @Description Uploads an image to A1.art and submits a generation job with caller-supplied app/version/cnet ids. Omitted ids fall back to the configured defaults.
// @Tags        generation
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Image file (JPG, PNG, ...)"
// @Param       app_id formData string false "A1.art application id"
// @Param       version_id formData string false "Application version id"
// @Param       cnet_form_id formData string false "ControlNet form id"
// @Param       generate_num formData int false "Number of images to generate (default 1)"
// @Success     200 {object} models.CreateTaskResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /create [post]
func (h *TasksHandler) Create(c *gin.Context) {
	data, filename, ok := h.readFile(c)
	if !ok {
		return
	}

	params := services.CreateParams{
		AppID:       formValue(c, "app_id", h.cfg.DefaultAppID),
		VersionID:   formValue(c, "version_id", h.cfg.DefaultVersionID),
		CnetFormID:  formValue(c, "cnet_form_id", h.cfg.DefaultCnetFormID),
		GenerateNum: 1,
	}
	if raw := c.PostForm("generate_num"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid generate_num",
				Message: "generate_num must be a positive integer",
			})
			return
		}
		params.GenerateNum = n
	}

	result, err := h.tasks.CreateTask(data, filename, params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CreateTaskResponse{
		Status: "success",
		TaskID: result.TaskID,
		UploadResult: models.UploadInfo{
			ImageURL: result.Upload.ImageURL,
			Path:     result.Upload.Path,
		},
		LocalPath: result.LocalPath,
	})
}

// Generate godoc
// @Summary     Create a generation task from a template
// @Description Uploads an image and submits a generation job using a pre-configured template. Template tasks always generate a single image.
// @Tags        generation
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Image file (JPG, PNG, ...)"
// @Param       template_id formData int false "Template id (see GET /templates, default 0)"
// @Success     200 {object} models.GenerateTaskResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /generate [post]
func (h *TasksHandler) Generate(c *gin.Context) {
	data, filename, ok := h.readFile(c)
	if !ok {
		return
	}

	templateID := 0
	if raw := c.PostForm("template_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid template_id",
				Message: "template_id must be an integer",
			})
			return
		}
		templateID = id
	}

	result, err := h.tasks.CreateFromTemplate(data, filename, templateID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateTaskResponse{
		Status:       "success",
		TaskID:       result.TaskID,
		TemplateID:   templateID,
		TemplateName: result.Template.Name,
		UploadResult: models.UploadInfo{
			ImageURL: result.Upload.ImageURL,
			Path:     result.Upload.Path,
		},
		LocalPath: result.LocalPath,
	})
}

// Status godoc
// @Summary     Query task status
// @Description Fetches the current state of a generation task. Poll every couple of seconds while state_text is PROCESSING; image URLs are returned once it is COMPLETED.
// @Tags        tasks
// @Produce     json
// @Param       task_id path string true "Task id returned by /create or /generate"
// @Success     200 {object} models.StatusResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /status/{task_id} [get]
func (h *TasksHandler) Status(c *gin.Context) {
	taskID := c.Param("task_id")

	status, err := h.tasks.GetStatus(taskID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{
		Status:     "success",
		ID:         status.ID,
		State:      status.State,
		StateText:  status.StateText,
		Images:     status.Images,
		StartDate:  status.StartDate,
		FinishDate: status.FinishDate,
		CreateDate: status.CreateDate,
	})
}

// readFile pulls the uploaded image out of the multipart form.
func (h *TasksHandler) readFile(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no file uploaded",
			Message: "please provide an image in the 'file' form field",
		})
		return nil, "", false
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open file",
			Message: err.Error(),
		})
		return nil, "", false
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return nil, "", false
	}

	return data, fileHeader.Filename, true
}

func formValue(c *gin.Context, key, defaultValue string) string {
	if v := c.PostForm(key); v != "" {
		return v
	}
	return defaultValue
}
