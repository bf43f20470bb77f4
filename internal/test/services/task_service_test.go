package services_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a1art-gateway/internal/a1art"
	"a1art-gateway/internal/services"
	"a1art-gateway/internal/storage"
	"a1art-gateway/internal/templates"
)

// stubProvider fakes the three A1.art endpoints and records traffic so tests
// can assert on call ordering and payloads.
type stubProvider struct {
	uploadCalls   atomic.Int32
	generateCalls atomic.Int32

	uploadBody   string
	generateBody string
	taskBody     string

	lastGenerate map[string]interface{}
}

func (p *stubProvider) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/images/upload", func(w http.ResponseWriter, r *http.Request) {
		p.uploadCalls.Add(1)
		w.Write([]byte(p.uploadBody))
	})
	mux.HandleFunc("/images/generate", func(w http.ResponseWriter, r *http.Request) {
		p.generateCalls.Add(1)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p.lastGenerate))
		w.Write([]byte(p.generateBody))
	})
	mux.HandleFunc("/tasks/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(p.taskBody))
	})
	return httptest.NewServer(mux)
}

func newService(t *testing.T, srvURL, templatesJSON string) (*services.TaskService, string) {
	t.Helper()
	dir := t.TempDir()

	templatesPath := filepath.Join(dir, "templates.json")
	require.NoError(t, os.WriteFile(templatesPath, []byte(templatesJSON), 0o644))

	inputDir := filepath.Join(dir, "input")
	client := a1art.NewClient(srvURL, "test-key", "", zerolog.Nop())
	svc := services.NewTaskService(
		client,
		storage.NewLocal(inputDir),
		templates.Load(templatesPath, zerolog.Nop()),
		zerolog.Nop(),
	)
	return svc, inputDir
}

const oneTemplate = `{"templates": [{"template_id": 3, "name": "Ghibli Style", "app_id": "tpl-app", "version_id": "tpl-ver", "cnet_form_id": "tpl-cnet"}]}`

func TestCreateTask_RawParameters(t *testing.T) {
	stub := &stubProvider{
		uploadBody:   `{"code":0,"data":{"imageUrl":"https://x/u1","path":"p1"}}`,
		generateBody: `{"code":0,"data":{"taskId":"T1"}}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, inputDir := newService(t, srv.URL, oneTemplate)

	result, err := svc.CreateTask([]byte("jpeg-bytes"), "cat.jpg", services.CreateParams{
		AppID:       "app",
		VersionID:   "ver",
		CnetFormID:  "cnet",
		GenerateNum: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "T1", result.TaskID)
	assert.Equal(t, "https://x/u1", result.Upload.ImageURL)
	assert.Equal(t, "p1", result.Upload.Path)
	assert.Nil(t, result.Template)

	// file was persisted under the input dir with its extension
	assert.Equal(t, ".jpg", filepath.Ext(result.LocalPath))
	data, err := os.ReadFile(result.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Contains(t, result.LocalPath, inputDir)

	// generation payload carries the caller's parameters and the cnet ref
	// built from the upload result
	assert.Equal(t, float64(2), stub.lastGenerate["generateNum"])
	assert.Equal(t, "app", stub.lastGenerate["appId"])
	assert.Equal(t, "ver", stub.lastGenerate["versionId"])
	cnet := stub.lastGenerate["cnet"].([]interface{})
	require.Len(t, cnet, 1)
	ref := cnet[0].(map[string]interface{})
	assert.Equal(t, "cnet", ref["id"])
	assert.Equal(t, "https://x/u1", ref["imageUrl"])
	assert.Equal(t, "p1", ref["path"])
}

func TestCreateFromTemplate_ForcesSingleImage(t *testing.T) {
	stub := &stubProvider{
		uploadBody:   `{"code":0,"data":{"imageUrl":"https://x/u1","path":"p1"}}`,
		generateBody: `{"code":0,"data":{"taskId":"T2"}}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, _ := newService(t, srv.URL, oneTemplate)

	result, err := svc.CreateFromTemplate([]byte("img"), "cat.jpg", 3)
	require.NoError(t, err)

	assert.Equal(t, "T2", result.TaskID)
	require.NotNil(t, result.Template)
	assert.Equal(t, "Ghibli Style", result.Template.Name)

	assert.Equal(t, float64(1), stub.lastGenerate["generateNum"])
	assert.Equal(t, "tpl-app", stub.lastGenerate["appId"])
	assert.Equal(t, "tpl-ver", stub.lastGenerate["versionId"])
	ref := stub.lastGenerate["cnet"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "tpl-cnet", ref["id"])
}

func TestCreateFromTemplate_UnknownID_NoRemoteCalls(t *testing.T) {
	stub := &stubProvider{
		uploadBody:   `{"code":0,"data":{"imageUrl":"https://x/u1","path":"p1"}}`,
		generateBody: `{"code":0,"data":{"taskId":"T1"}}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, inputDir := newService(t, srv.URL, oneTemplate)

	_, err := svc.CreateFromTemplate([]byte("img"), "cat.jpg", 5)
	assert.ErrorIs(t, err, templates.ErrNotFound)

	assert.Equal(t, int32(0), stub.uploadCalls.Load())
	assert.Equal(t, int32(0), stub.generateCalls.Load())

	// nothing was persisted either
	_, statErr := os.Stat(inputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreateTask_UploadFailureAborts(t *testing.T) {
	stub := &stubProvider{
		uploadBody:   `{"code":1,"msg_cn":"額度不足"}`,
		generateBody: `{"code":0,"data":{"taskId":"T1"}}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, _ := newService(t, srv.URL, oneTemplate)

	_, err := svc.CreateTask([]byte("img"), "cat.jpg", services.CreateParams{GenerateNum: 1})

	var rejected *a1art.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "額度不足", rejected.Message)
	assert.Equal(t, int32(1), stub.uploadCalls.Load())
	assert.Equal(t, int32(0), stub.generateCalls.Load(), "generation must not be attempted after a failed upload")
}

func TestCreateTask_GenerateRejectionPropagates(t *testing.T) {
	stub := &stubProvider{
		uploadBody:   `{"code":0,"data":{"imageUrl":"https://x/u1","path":"p1"}}`,
		generateBody: `{"code":1,"msg_cn":"額度不足"}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, _ := newService(t, srv.URL, oneTemplate)

	_, err := svc.CreateTask([]byte("img"), "cat.jpg", services.CreateParams{GenerateNum: 1})

	var rejected *a1art.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "額度不足", rejected.Message)
}

func TestGetStatus_CompletedReturnsImagesInOrder(t *testing.T) {
	stub := &stubProvider{
		uploadBody:   `{"code":0,"data":{"imageUrl":"https://x/u1","path":"p1"}}`,
		generateBody: `{"code":0,"data":{"taskId":"T1"}}`,
		taskBody:     `{"code":0,"data":{"id":"T1","state":10,"images":["https://x/i1","https://x/i2"],"startDate":100,"finishDate":200,"createDate":90}}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, _ := newService(t, srv.URL, oneTemplate)

	// round trip: the handle from creation polls to exactly the stubbed URLs
	result, err := svc.CreateTask([]byte("img"), "cat.jpg", services.CreateParams{GenerateNum: 1})
	require.NoError(t, err)

	status, err := svc.GetStatus(result.TaskID)
	require.NoError(t, err)

	assert.Equal(t, "T1", status.ID)
	assert.Equal(t, services.StateCompleted, status.State)
	assert.Equal(t, "COMPLETED", status.StateText)
	assert.Equal(t, []string{"https://x/i1", "https://x/i2"}, status.Images)
	assert.Equal(t, int64(100), status.StartDate)
	assert.Equal(t, int64(200), status.FinishDate)
	assert.Equal(t, int64(90), status.CreateDate)
}

func TestGetStatus_ProcessingHasNoImages(t *testing.T) {
	stub := &stubProvider{
		taskBody: `{"code":0,"data":{"id":"T1","state":30}}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, _ := newService(t, srv.URL, oneTemplate)

	status, err := svc.GetStatus("T1")
	require.NoError(t, err)
	assert.Equal(t, "PROCESSING", status.StateText)
	assert.Equal(t, []string{}, status.Images)
}

func TestGetStatus_FailedDropsProviderImages(t *testing.T) {
	stub := &stubProvider{
		taskBody: `{"code":0,"data":{"id":"T1","state":20,"images":["https://x/partial"]}}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, _ := newService(t, srv.URL, oneTemplate)

	status, err := svc.GetStatus("T1")
	require.NoError(t, err)
	assert.Equal(t, "FAILED", status.StateText)
	assert.Empty(t, status.Images)
}

func TestGetStatus_UnknownStateCode(t *testing.T) {
	stub := &stubProvider{
		taskBody: `{"code":0,"data":{"id":"T1","state":99,"images":["https://x/i1"],"startDate":100,"createDate":90}}`,
	}
	srv := stub.server(t)
	defer srv.Close()

	svc, _ := newService(t, srv.URL, oneTemplate)

	status, err := svc.GetStatus("T1")
	require.NoError(t, err)

	assert.Equal(t, "UNKNOWN", status.StateText)
	assert.Equal(t, 99, status.State)
	// fail closed: an unrecognized state never exposes images
	assert.Empty(t, status.Images)
	// timestamps still pass through
	assert.Equal(t, int64(100), status.StartDate)
	assert.Equal(t, int64(90), status.CreateDate)
}
