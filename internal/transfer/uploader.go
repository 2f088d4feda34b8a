// Package transfer moves raw files to the remote FTP store after a
// batch commits. The transport retries transient failures; the
// orchestrator it serves never does.
package transfer

import (
	"context"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/edafy/ingest-cli/internal/resilience"
)

// Options configures the FTP uploader.
type Options struct {
	Host     string
	User     string
	Password string
	Timeout  time.Duration
	Retry    resilience.RetryConfig

	// OnUploadProgress is called with a whole-number percentage as
	// bytes are stored. Optional.
	OnUploadProgress func(file string, pct int)

	// OnUploadComplete is called once per file after a successful
	// store. Optional.
	OnUploadComplete func(file string)
}

// Uploader stores local files on a remote FTP server.
type Uploader struct {
	opts Options
}

// NewUploader creates an uploader with the given options.
func NewUploader(opts Options) *Uploader {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.User == "" {
		opts.User = "anonymous"
		opts.Password = "anonymous@"
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = resilience.DefaultRetryConfig()
	}
	if opts.Retry.OnRetry == nil {
		opts.Retry.OnRetry = resilience.RetryLogger("ftp", "upload")
	}
	return &Uploader{opts: opts}
}

// Upload stores one local file at the remote path, creating remote
// directories as needed. Transient failures are retried with backoff;
// each attempt uses a fresh connection.
func (u *Uploader) Upload(ctx context.Context, localPath, remotePath string) error {
	name := filepath.Base(localPath)
	err := resilience.Do(ctx, u.opts.Retry, func(ctx context.Context) error {
		return u.uploadOnce(ctx, localPath, remotePath)
	})
	if err != nil {
		return eris.Wrapf(err, "transfer: upload %s", name)
	}
	if u.opts.OnUploadComplete != nil {
		u.opts.OnUploadComplete(name)
	}
	return nil
}

// UploadAll uploads files in order, mapping each local file under
// remoteDir. The first failure stops the run.
func (u *Uploader) UploadAll(ctx context.Context, localPaths []string, remoteDir string) error {
	for _, local := range localPaths {
		remote := path.Join(remoteDir, filepath.Base(local))
		if err := u.Upload(ctx, local, remote); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uploader) uploadOnce(ctx context.Context, localPath, remotePath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return eris.Wrapf(err, "transfer: open %s", localPath)
	}
	defer f.Close() //nolint:errcheck

	info, err := f.Stat()
	if err != nil {
		return eris.Wrapf(err, "transfer: stat %s", localPath)
	}

	host := u.opts.Host
	if _, _, splitErr := net.SplitHostPort(host); splitErr != nil {
		host = net.JoinHostPort(host, "21")
	}

	zap.L().Debug("ftp: connecting", zap.String("host", host), zap.String("remote", remotePath))
	conn, err := ftp.Dial(host, ftp.DialWithTimeout(u.opts.Timeout), ftp.DialWithContext(ctx))
	if err != nil {
		return eris.Wrap(err, "transfer: dial")
	}
	defer conn.Quit() //nolint:errcheck

	if err := conn.Login(u.opts.User, u.opts.Password); err != nil {
		return eris.Wrap(err, "transfer: login")
	}

	if dir := path.Dir(remotePath); dir != "." && dir != "/" {
		makeRemoteDirs(conn, dir)
	}

	reader := &progressReader{
		r:      f,
		total:  info.Size(),
		file:   filepath.Base(localPath),
		notify: u.opts.OnUploadProgress,
	}
	if err := conn.Stor(remotePath, reader); err != nil {
		return eris.Wrapf(err, "transfer: store %s", remotePath)
	}
	return nil
}

// makeRemoteDirs creates each path segment, ignoring "already exists"
// responses since FTP has no mkdir -p.
func makeRemoteDirs(conn *ftp.ServerConn, dir string) {
	segments := strings.Split(strings.Trim(dir, "/"), "/")
	cur := ""
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		cur = cur + "/" + seg
		if err := conn.MakeDir(cur); err != nil {
			zap.L().Debug("ftp: mkdir", zap.String("dir", cur), zap.Error(err))
		}
	}
}

// progressReader reports whole-percent progress while the FTP client
// drains the local file.
type progressReader struct {
	r       io.Reader
	total   int64
	sent    int64
	lastPct int
	file    string
	notify  func(file string, pct int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.sent += int64(n)
	if p.notify != nil && p.total > 0 {
		pct := int(p.sent * 100 / p.total)
		if pct > p.lastPct {
			p.lastPct = pct
			p.notify(p.file, pct)
		}
	}
	return n, err
}
