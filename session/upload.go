package session

import "math"

// UploadStatus is the lifecycle of a single file transfer.
type UploadStatus int

const (
	UploadIdle UploadStatus = iota
	UploadActive
	UploadDone
	UploadFailed
)

// UploadTask is the ephemeral state of one in-flight upload. At most one
// upload is modeled at a time.
type UploadTask struct {
	FileName string
	Progress int // 0-100
	Status   UploadStatus
}

func NewUploadTask() *UploadTask {
	return &UploadTask{}
}

// Start arms the task for a chosen file.
func (t *UploadTask) Start(fileName string) {
	t.FileName = fileName
	t.Progress = 0
	t.Status = UploadActive
}

// SetProgress folds a transport progress event into the task. Events with
// an unknown total are skipped, and progress never moves backwards.
func (t *UploadTask) SetProgress(loaded, total int64) {
	if t.Status != UploadActive || total <= 0 {
		return
	}
	p := int(math.Round(float64(loaded) / float64(total) * 100))
	if p > 100 {
		p = 100
	}
	if p > t.Progress {
		t.Progress = p
	}
}

func (t *UploadTask) Done() {
	t.Progress = 100
	t.Status = UploadDone
}

func (t *UploadTask) Fail() {
	t.Status = UploadFailed
}

// Reset returns the task to idle so the same file can be chosen again.
func (t *UploadTask) Reset() {
	t.FileName = ""
	t.Progress = 0
	t.Status = UploadIdle
}

func (t *UploadTask) Active() bool {
	return t.Status == UploadActive
}
