// Command slidercheck loads slider definitions and prints what the engine
// makes of them: normalized settings, ticks and the attributes of each
// handle. It reads the same files as the demo unless paths are given.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/slider"
)

// trackWidth is the width of the in-memory track used to place handles.
const trackWidth = 100

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var (
		cfg *config.Config
		err error
	)
	if len(os.Args) > 1 {
		cfg, err = config.LoadFrom(os.Args[1:]...)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.WithError(err).Fatal("load configuration")
	}
	log.WithField("sliders", len(cfg.Sliders)).Info("configuration loaded")

	failed := 0
	for _, sc := range cfg.Sliders {
		if err := check(os.Stdout, sc); err != nil {
			log.WithField("slider", sc.Name).WithError(err).Error("invalid slider")
			failed++
		}
	}
	if failed > 0 {
		log.Fatalf("%d of %d sliders are invalid", failed, len(cfg.Sliders))
	}
}

func check(w io.Writer, sc config.SliderConfig) error {
	cfg, err := sc.Build()
	if err != nil {
		return err
	}
	surface := slider.NewMemorySurface(trackWidth)
	s, err := slider.New(cfg, slider.WithSurface(surface))
	if err != nil {
		return err
	}

	st := s.Settings()
	fmt.Fprintf(w, "%s (%s)\n", sc.Name, sc.Title)
	fmt.Fprintf(w, "  limits    min=%s max=%s step=%s\n",
		slider.FormatValue(st.Min), slider.FormatValue(st.Max), slider.FormatValue(st.Step))
	fmt.Fprintf(w, "  mode      range=%t disabled=%t persist=%t\n", st.IsRange, st.Disabled, sc.Persist)
	fmt.Fprintf(w, "  value     %s\n", s.Value())

	if ticks := s.Ticks(); len(ticks) > 0 {
		parts := make([]string, 0, len(ticks))
		for _, t := range ticks {
			p := slider.FormatValue(t.Value)
			if t.Major {
				p = "*" + p
			}
			if t.Label != "" {
				p += "[" + t.Label + "]"
			}
			parts = append(parts, p)
		}
		fmt.Fprintf(w, "  ticks     %d: %s\n", len(ticks), strings.Join(parts, " "))
	}

	handles := []slider.Handle{slider.HandleMax}
	if st.IsRange {
		handles = []slider.Handle{slider.HandleMin, slider.HandleMax}
	}
	for _, h := range handles {
		fmt.Fprintf(w, "  %-9s at %s%%\n", h, slider.FormatValue(surface.Percent(h)))
		attrs := s.Attributes(h)
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "    %-18s %s\n", name, attrs[name])
		}
	}
	fmt.Fprintln(w)
	return nil
}
