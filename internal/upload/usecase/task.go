package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
)

// Client-side limits for a direct-to-CDN transfer. The CDN enforces its own;
// these reject obviously bad files before any bytes leave the process.
const MaxUploadBytes = 500 << 20 // 500 MB

var allowedMIMETypes = map[string]bool{
	"video/mp4":        true,
	"video/quicktime":  true,
	"video/webm":       true,
	"video/x-matroska": true,
}

var (
	ErrAlreadyStarted = errors.New("upload already started")
	ErrCanceled       = errors.New("upload canceled")
)

type Progress struct {
	Sent  int64
	Total int64
}

type Result struct {
	Body []byte
	Err  error
}

// Task is one grant-backed file transfer to the CDN. At most one transfer is
// ever in flight per task; Cancel is cooperative (the request context is
// canceled, the transfer goroutine stops at its next read) and idempotent.
// There are no retries: a failed transfer is terminal and the caller mints a
// new grant for another attempt.
type Task struct {
	client      *http.Client
	uploadURL   string
	auth        *UploadAuth
	fileName    string
	contentType string
	size        int64
	src         io.Reader

	startOnce  sync.Once
	cancelOnce sync.Once
	canceled   chan struct{}
	sent       atomic.Int64
	progress   chan Progress
	done       chan Result
}

// NewTask validates the file up front; a type or size rejection happens
// before any transfer starts.
func NewTask(auth *UploadAuth, uploadURL, fileName, contentType string, size int64, src io.Reader) (*Task, error) {
	if !allowedMIMETypes[contentType] {
		return nil, fmt.Errorf("unsupported file type: %s", contentType)
	}
	if size > MaxUploadBytes {
		return nil, fmt.Errorf("file too large: %d bytes (limit %d)", size, MaxUploadBytes)
	}

	return &Task{
		client:      http.DefaultClient,
		uploadURL:   uploadURL,
		auth:        auth,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		src:         src,
		canceled:    make(chan struct{}),
		progress:    make(chan Progress, 1),
		done:        make(chan Result, 1),
	}, nil
}

// Start begins the transfer. A second call returns ErrAlreadyStarted without
// touching the in-flight upload.
func (t *Task) Start(ctx context.Context) error {
	started := false
	t.startOnce.Do(func() {
		started = true
		ctx, cancel := context.WithCancel(ctx)
		go func() {
			select {
			case <-t.canceled:
				cancel()
			case <-ctx.Done():
			}
		}()
		go t.run(ctx, cancel)
	})
	if !started {
		return ErrAlreadyStarted
	}
	return nil
}

// Cancel stops the transfer. Safe to call multiple times, and before Start:
// a task canceled first never sends a byte.
func (t *Task) Cancel() {
	t.cancelOnce.Do(func() {
		close(t.canceled)
	})
}

// Progress delivers the latest sent/total counts. Updates are dropped, not
// queued: a slow consumer only ever sees the freshest value.
func (t *Task) Progress() <-chan Progress {
	return t.progress
}

// Done yields the terminal result exactly once.
func (t *Task) Done() <-chan Result {
	return t.done
}

func (t *Task) run(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	// A task canceled before starting never opens a connection.
	select {
	case <-t.canceled:
		t.finish(nil, ErrCanceled)
		return
	default:
	}

	body, contentType := t.multipartBody(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.uploadURL, body)
	if err != nil {
		t.finish(nil, err)
		return
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = ErrCanceled
		}
		t.finish(nil, err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.finish(nil, err)
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.finish(nil, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, respBody))
		return
	}

	t.finish(respBody, nil)
}

// multipartBody streams the grant fields and file through a pipe so the
// whole file is never buffered in memory.
func (t *Task) multipartBody(ctx context.Context) (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := t.writeParts(ctx, mw)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	return pr, mw.FormDataContentType()
}

func (t *Task) writeParts(ctx context.Context, mw *multipart.Writer) error {
	fields := map[string]string{
		"publicKey": t.auth.PublicKey,
		"token":     t.auth.AuthParameters.Token,
		"expire":    strconv.FormatInt(t.auth.AuthParameters.Expire, 10),
		"signature": t.auth.AuthParameters.Signature,
		"fileName":  t.fileName,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return err
		}
	}

	part, err := mw.CreateFormFile("file", t.fileName)
	if err != nil {
		return err
	}

	_, err = io.Copy(part, &countingReader{ctx: ctx, task: t, src: t.src})
	return err
}

func (t *Task) finish(body []byte, err error) {
	t.done <- Result{Body: body, Err: err}
	close(t.done)
}

func (t *Task) report() {
	p := Progress{Sent: t.sent.Load(), Total: t.size}
	select {
	case t.progress <- p:
	default:
		// drop the stale value so the latest one fits
		select {
		case <-t.progress:
		default:
		}
		select {
		case t.progress <- p:
		default:
		}
	}
}

// countingReader pumps file bytes while honoring cancellation between reads
// and publishing progress as it goes.
type countingReader struct {
	ctx  context.Context
	task *Task
	src  io.Reader
}

func (r *countingReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, ErrCanceled
	}
	n, err := r.src.Read(p)
	if n > 0 {
		r.task.sent.Add(int64(n))
		r.task.report()
	}
	return n, err
}
