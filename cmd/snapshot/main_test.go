package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okraft/skillscope/internal/domain/export"
	"github.com/okraft/skillscope/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestRun(t *testing.T) {
	Convey("Given an output directory", t, func() {
		dir := t.TempDir()

		Convey("When a snapshot is generated", func() {
			So(run(context.Background(), dir, 960, 540, ""), ShouldBeNil)

			Convey("Then every artifact lands on disk", func() {
				entries, err := os.ReadDir(dir)
				So(err, ShouldBeNil)

				names := make([]string, len(entries))
				for i, e := range entries {
					names[i] = e.Name()
				}
				So(names, ShouldContain, export.GapReportFilename)
				So(names, ShouldContain, "skills_gap_analysis.pdf")
				So(names, ShouldContain, "skill_clusters.png")
				So(names, ShouldContain, "dashboard.html")

				var summaries, clusterStats int
				for _, n := range names {
					switch {
					case filepath.Ext(n) == ".json":
						summaries++
					case filepath.Ext(n) == ".csv" && n != export.GapReportFilename:
						clusterStats++
					}
				}
				So(summaries, ShouldEqual, 1)
				So(clusterStats, ShouldEqual, 1)
			})
		})
	})
}

func TestDirDownloader(t *testing.T) {
	Convey("Given a directory sink", t, func() {
		dir := t.TempDir()
		sink := &dirDownloader{dir: dir}

		Convey("When the context was already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := sink.Download(ctx, "late.csv", "text/csv", []byte("data"))

			Convey("Then the write is refused and nothing lands", func() {
				So(errors.Is(err, export.ErrExportFailed), ShouldBeTrue)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				_, statErr := os.Stat(filepath.Join(dir, "late.csv"))
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})

		Convey("When the context is live", func() {
			err := sink.Download(context.Background(), "report.csv", "text/csv", []byte("data"))

			So(err, ShouldBeNil)
			content, readErr := os.ReadFile(filepath.Join(dir, "report.csv"))
			So(readErr, ShouldBeNil)
			So(string(content), ShouldEqual, "data")
		})
	})
}
