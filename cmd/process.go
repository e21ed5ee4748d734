/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/VirtualBrainLab/probe-library/logger"
	"github.com/VirtualBrainLab/probe-library/mesher"
	"github.com/VirtualBrainLab/probe-library/probe"
	"github.com/VirtualBrainLab/probe-library/writefiles"
)

// meshOptions assembles generation settings from flags/config.
func meshOptions() mesher.Options {
	return mesher.Options{
		Thickness:       viper.GetFloat64("thickness"),
		ContactHeight:   viper.GetFloat64("contact-height"),
		AddContacts:     viper.GetBool("contacts"),
		TriangulateCaps: viper.GetBool("triangulate-caps"),
	}
}

// processProbe writes the OBJ, CSV and metadata files for one probe into
// <outDir>/<producer>/<name>/. A failure affects this probe only.
func processProbe(gen *mesher.Generator, p *probe.Probe, name string, typeID int, outDir string, opts mesher.Options) error {
	name = sanitizeName(name)
	dir := filepath.Join(outDir, sanitizeName(p.Manufacturer()), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	mesh, err := gen.Generate(p, opts)
	if err != nil {
		return fmt.Errorf("generating mesh for %s: %w", name, err)
	}

	objPath := filepath.Join(dir, name+".obj")
	if err := writefiles.SaveOBJ(objPath, mesh, name); err != nil {
		return err
	}
	if err := writefiles.SaveElectrodeCSV(filepath.Join(dir, name+".csv"), p); err != nil {
		return err
	}
	md := writefiles.BuildMetadata(p, name, typeID)
	if err := writefiles.SaveMetadata(filepath.Join(dir, name+"_metadata.json"), md); err != nil {
		return err
	}

	logger.L.Info("processed probe",
		zap.String("name", name),
		zap.Int("contacts", p.ContactCount()),
		zap.Int("shanks", p.ShankCount()),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("faces", mesh.FaceCount()),
		zap.String("obj", objPath))
	return nil
}

// processDocument runs every probe in one specification file. typeID
// numbering starts at startType and increments per probe. Returns the
// number of probes processed and the number skipped.
func processDocument(gen *mesher.Generator, path string, startType int, outDir string, opts mesher.Options) (done, skipped int) {
	probes, err := probe.ReadFile(path)
	if err != nil {
		logger.L.Error("skipping document", zap.String("path", path), zap.Error(err))
		return 0, 1
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i, p := range probes {
		fallback := base
		if len(probes) > 1 {
			fallback = fmt.Sprintf("%s_%d", base, i+1)
		}
		name := p.Name(fallback)
		if err := processProbe(gen, p, name, startType+i, outDir, opts); err != nil {
			logger.L.Error("skipping probe", zap.String("name", name), zap.Error(err))
			skipped++
			continue
		}
		done++
	}
	return done, skipped
}

// sanitizeName keeps generated paths flat and portable.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")
	return replacer.Replace(name)
}
