package io

import (
	"bytes"
	"io"
	"time"

	"github.com/google/renameio/v2"
	"github.com/klauspost/compress/zip"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/observability"
	"github.com/matzehuels/reclass/pkg/project"
)

// WriteProject writes p as a container to w.
//
// Classes are written in project insertion order and nodes in class order.
// The document is fully built before anything is written, so invalid input
// never produces partial output. I/O failures are returned with code
// IO_ERROR and the underlying cause preserved. WriteProject does not close w.
func WriteProject(p *project.Project, w io.Writer, opts Options) error {
	if w == nil {
		return errs.New(errs.ErrCodeInvalidInput, "writer must not be nil")
	}
	return save("stream", p, opts, func(data []byte) error {
		return writeContainer(w, data)
	})
}

// ExportProject writes p as a container to the file at path.
//
// The container is written to a temporary file in the same directory and
// renamed over path once it is complete. If anything fails, the temporary
// file is removed and an existing file at path is left as it was.
func ExportProject(p *project.Project, path string, opts Options) error {
	if path == "" {
		return errs.New(errs.ErrCodeInvalidInput, "path must not be empty")
	}
	return save(path, p, opts, func(data []byte) error {
		return replaceFile(path, data, writeContainer)
	})
}

// replaceFile writes data through write into a pending file next to path and
// renames it over path on success. On failure the pending file is removed.
func replaceFile(path string, data []byte, write func(w io.Writer, data []byte) error) error {
	f, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "create %s", path)
	}
	defer f.Cleanup()

	if err := write(f, data); err != nil {
		return err
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "replace %s", path)
	}
	return nil
}

// save encodes p and hands the document to sink, reporting to the save hooks.
func save(target string, p *project.Project, opts Options, sink func(data []byte) error) error {
	start := time.Now()
	classCount := 0
	if p != nil {
		classCount = p.ClassCount()
	}

	hooks := observability.Save()
	hooks.OnSaveStart(target, classCount)

	data, err := encode(p, opts)
	if err == nil {
		err = sink(data)
	}

	hooks.OnSaveComplete(target, classCount, time.Since(start), err)
	return err
}

// encode validates p and renders its document.
func encode(p *project.Project, opts Options) ([]byte, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}

	doc := newDocumentBuilder(opts).build(p)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode %s", DataFileName)
	}
	return buf.Bytes(), nil
}

// writeContainer writes data as the single entry of a new archive.
// On a failed entry write the archive is left unfinalized.
func writeContainer(w io.Writer, data []byte) error {
	zw := zip.NewWriter(w)
	entry, err := zw.CreateHeader(&zip.FileHeader{
		Name:     DataFileName,
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "create %s", DataFileName)
	}
	if _, err := entry.Write(data); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", DataFileName)
	}
	if err := zw.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "finalize archive")
	}
	return nil
}
