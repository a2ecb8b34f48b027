package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	"github.com/matzehuels/bpmngraph/pkg/errors"
	"github.com/matzehuels/bpmngraph/pkg/pipeline"
)

// openFile opens a file with the system viewer.
var openFile = browser.OpenFile

// show renders the exported graph to a temporary SVG file and opens it.
func (c *CLI) show(ctx context.Context, runner *pipeline.Runner, res *pipeline.Result, detailed bool) error {
	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()
	svg, err := runner.RenderSVG(res.Conversion.Output, detailed)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}

	path, err := writeTempSVG(res.Output, svg)
	if err != nil {
		return err
	}
	printFile(c.Stdout, path)

	if err := openFile(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// writeTempSVG writes svg to a fresh file in the system temp directory,
// named after the matrix file it belongs to.
func writeTempSVG(output string, svg []byte) (string, error) {
	base := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	f, err := os.CreateTemp("", appName+"-"+base+"-*.svg")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "create temp svg")
	}
	if _, err := f.Write(svg); err != nil {
		f.Close()
		return "", errors.Wrap(errors.ErrCodeIO, err, "write %s", f.Name())
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "close %s", f.Name())
	}
	return f.Name(), nil
}
