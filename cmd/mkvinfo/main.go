// Command mkvinfo prints a Matroska/WebM file's segment metadata: its
// info block, declared tracks, and cluster count, without decoding any
// frame payloads. It replaces the teacher's example/extracter, which
// converted subtitle/video tracks; this example instead exercises the
// metadata-only MatroskaView path.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ebmlkit/matroska"
)

func main() {
	acceptUnknownSize := flag.Bool("accept-unknown-size", false, "parse segments written with Unknown size, ending at EOF")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mkvinfo [-v] [-accept-unknown-size] <file.mkv>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	if err := run(path, *acceptUnknownSize); err != nil {
		slog.Error("mkvinfo failed", "path", path, "error", err)
		os.Exit(1)
	}
}

func run(path string, acceptUnknownSize bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	slog.Debug("opened file", "path", path)

	var opts []matroska.ViewOption
	if acceptUnknownSize {
		opts = append(opts, matroska.WithAcceptUnknownSegmentSize())
	}

	view, err := matroska.NewMatroskaView(matroska.NewBlockingReader(f), opts...)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	printHeader(view)
	printInfo(view)
	printTracks(view)
	printClusters(view)
	return nil
}

func printHeader(v *matroska.MatroskaView) {
	fmt.Printf("DocType: %s (version %v)\n", v.Header.DocType, derefU(v.Header.DocTypeVersion))
}

func printInfo(v *matroska.MatroskaView) {
	info := v.Segment.Info
	if info == nil {
		fmt.Println("Info: (none)")
		return
	}
	fmt.Printf("TimestampScale: %d\n", info.TimestampScaleOrDefault())
	if info.Duration != nil {
		fmt.Printf("Duration: %.3f ticks\n", *info.Duration)
	}
	if info.Title != nil {
		fmt.Printf("Title: %s\n", *info.Title)
	}
	if info.MuxingApp != nil {
		fmt.Printf("MuxingApp: %s\n", *info.MuxingApp)
	}
	if info.WritingApp != nil {
		fmt.Printf("WritingApp: %s\n", *info.WritingApp)
	}
}

func printTracks(v *matroska.MatroskaView) {
	if v.Segment.Tracks == nil {
		fmt.Println("Tracks: (none)")
		return
	}
	for _, t := range v.Segment.Tracks.Entries {
		fmt.Printf("Track #%d: uid=%d type=%d codec=%s\n", t.TrackNumber, t.TrackUID, t.TrackType, t.CodecID)
		if t.Video != nil {
			fmt.Printf("  video: %dx%d\n", t.Video.PixelWidth, t.Video.PixelHeight)
		}
		if t.Audio != nil {
			fmt.Printf("  audio: %.0f Hz, %d channels\n", t.Audio.SamplingFrequency, t.Audio.Channels)
		}
	}
}

func printClusters(v *matroska.MatroskaView) {
	fmt.Printf("Clusters: %d\n", len(v.Segment.Clusters))
	for i, c := range v.Segment.Clusters {
		slog.Debug("cluster", "index", i, "offset", c.Offset, "size", c.Size, "fingerprint", c.Fingerprint)
	}
}

func derefU(p *uint64) uint64 {
	if p == nil {
		return 0
	}
	return *p
}
