package io

import (
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/klauspost/compress/zip"

	errs "github.com/matzehuels/reclass/pkg/errors"
)

// ReadDocument opens the container in r and parses its Data.xml entry.
//
// The document is checked for a reclass root element with a known format
// version; nothing else is interpreted. Rebuilding a project from the
// document is left to the caller.
func ReadDocument(r io.ReaderAt, size int64) (*etree.Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open archive")
	}

	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == DataFileName {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "archive has no %s entry", DataFileName)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "open %s", DataFileName)
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse %s", DataFileName)
	}

	root := doc.Root()
	if root == nil || root.Tag != elemRoot {
		return nil, errs.New(errs.ErrCodeInvalidInput, "%s has no %s root element", DataFileName, elemRoot)
	}
	if v := root.SelectAttrValue(attrVersion, ""); v != FormatVersion {
		return nil, errs.New(errs.ErrCodeInvalidInput, "unsupported format version %q", v)
	}
	return doc, nil
}

// OpenDocument reads the container file at path with [ReadDocument].
func OpenDocument(path string) (*etree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "stat %s", path)
	}
	return ReadDocument(f, info.Size())
}

// ClassSummary describes one class element of a saved document.
type ClassSummary struct {
	Name  string
	UUID  string
	Nodes int
}

// Summary describes a saved document without rebuilding a project.
type Summary struct {
	Version    string
	Platform   string
	Classes    []ClassSummary
	CustomData int
}

// Summarize lists the classes of a document returned by [ReadDocument].
func Summarize(doc *etree.Document) Summary {
	root := doc.Root()
	if root == nil {
		return Summary{}
	}

	s := Summary{
		Version:  root.SelectAttrValue(attrVersion, ""),
		Platform: root.SelectAttrValue(attrPlatform, ""),
	}
	if classes := root.SelectElement(elemClasses); classes != nil {
		for _, c := range classes.SelectElements(elemClass) {
			s.Classes = append(s.Classes, ClassSummary{
				Name:  c.SelectAttrValue(attrName, ""),
				UUID:  c.SelectAttrValue(attrUUID, ""),
				Nodes: len(c.SelectElements(elemNode)),
			})
		}
	}
	if data := root.SelectElement(elemCustomData); data != nil {
		s.CustomData = len(data.ChildElements())
	}
	return s
}
