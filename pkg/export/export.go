package export

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/pcbkernel/iges/pkg/kernel"
	"github.com/pcbkernel/iges/pkg/outline"
	"github.com/pkg/errors"
)

// Result collects the byte output of the SVG and PNG previews and of the
// optional 3MF mesh export, plus the path of the DXF file All wrote (DXF
// is file-oriented in its upstream library rather than
// io.Writer-oriented).
type Result struct {
	SVG, PNG     []byte
	DXFPath      string
	Mesh3MFBytes []byte
}

// All renders every export format for o and, if mesh is non-nil, the
// preview mesh. SVG, PNG, and DXF are independent read-only projections
// of the same finalized outline, so they run concurrently as three
// goroutines joined before anything else happens — the one place in this
// module concurrency appears, per the single-owner model everywhere
// else. The 3MF mesh export runs afterwards, on the calling goroutine.
// dxfPath names the file WriteDXF saves to (yofu/dxf writes files, not
// io.Writer streams).
func All(o *outline.Outline, dxfPath string, mesh *kernel.Mesh) (*Result, error) {
	if o.State() == outline.Open {
		return nil, ErrNotClosed
	}

	var (
		wg                     sync.WaitGroup
		svgErr, pngErr, dxfErr error
		svgBuf, pngBuf         bytes.Buffer
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		svgErr = WriteSVG(&svgBuf, o, DefaultSVGOptions())
	}()
	go func() {
		defer wg.Done()
		pngErr = WritePNG(&pngBuf, o, DefaultRasterOptions())
	}()
	go func() {
		defer wg.Done()
		if err := os.MkdirAll(filepath.Dir(dxfPath), 0o755); err != nil {
			dxfErr = errors.Wrap(err, "export: create DXF directory")
			return
		}
		dxfErr = WriteDXF(dxfPath, o)
	}()
	wg.Wait()

	for _, err := range []error{svgErr, pngErr, dxfErr} {
		if err != nil {
			return nil, err
		}
	}

	result := &Result{SVG: svgBuf.Bytes(), PNG: pngBuf.Bytes(), DXFPath: dxfPath}

	if mesh != nil {
		var meshBuf bytes.Buffer
		if err := WriteMesh3MF(&meshBuf, mesh); err != nil {
			return nil, err
		}
		result.Mesh3MFBytes = meshBuf.Bytes()
	}

	return result, nil
}
