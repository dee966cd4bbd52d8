package task

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/readme-api/internal/domain"
	"github.com/phrazzld/readme-api/internal/service"
)

// ReadmeTask generates a README for one description file and writes it to
// OutputPath.
type ReadmeTask struct {
	id         uuid.UUID
	InputPath  string
	OutputPath string
	useGemini  bool
	svc        service.ReadmeService

	mu     sync.Mutex
	status TaskStatus
	result *domain.Readme
}

// NewReadmeTask creates a pending ReadmeTask.
func NewReadmeTask(svc service.ReadmeService, inputPath, outputPath string, useGemini bool) *ReadmeTask {
	return &ReadmeTask{
		id:         uuid.New(),
		InputPath:  inputPath,
		OutputPath: outputPath,
		useGemini:  useGemini,
		svc:        svc,
		status:     TaskStatusPending,
	}
}

// OutputPathFor maps a description file to README path inside dir:
// "docs/api.txt" becomes "<dir>/api.md".
func OutputPathFor(dir, inputPath string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+".md")
}

// ID implements Task.
func (t *ReadmeTask) ID() uuid.UUID { return t.id }

// Type implements Task.
func (t *ReadmeTask) Type() string { return TaskTypeReadmeGeneration }

// Status implements Task.
func (t *ReadmeTask) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Result returns the generated README, or nil until the task has completed.
func (t *ReadmeTask) Result() *domain.Readme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

func (t *ReadmeTask) setStatus(status TaskStatus) {
	t.mu.Lock()
	t.status = status
	t.mu.Unlock()
}

// Execute implements Task.
func (t *ReadmeTask) Execute(ctx context.Context) error {
	t.setStatus(TaskStatusProcessing)

	result, err := t.run(ctx)
	if err != nil {
		t.setStatus(TaskStatusFailed)
		return err
	}

	t.mu.Lock()
	t.result = result
	t.status = TaskStatusCompleted
	t.mu.Unlock()
	return nil
}

func (t *ReadmeTask) run(ctx context.Context) (*domain.Readme, error) {
	data, err := os.ReadFile(t.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", t.InputPath, err)
	}

	result, err := t.svc.Generate(ctx, service.GenerateInput{
		Input:     string(data),
		UseGemini: t.useGemini,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate README for %s: %w", t.InputPath, err)
	}

	content := result.Content
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(t.OutputPath, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", t.OutputPath, err)
	}
	return result, nil
}
