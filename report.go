package subcode

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/yaml.v3"
)

// LogMode configures the destination for scan diagnostics.
type LogMode int

const (
	LogModeSilent LogMode = 0 // disable logs
	LogModeStdErr LogMode = 1 // log to stderr
	LogModeLogger LogMode = 2 // log to the supplied log.Logger instance
)

// Scanner summarizes subchannel data into a [Report]. The zero value
// is ready to use and logs nothing.
//
// Diagnostic logging can be enabled by specifying LogMode. For
// [LogModeLogger], supply a [log.Logger] instance to Logger. With
// logging enabled the Scanner prints one line per sector carrying
// extended data, plus a summary line.
type Scanner struct {
	LogMode LogMode     // direct the scan diagnostics
	Logger  *log.Logger // if LogMode == LogModeLogger, the log.Logger to use
}

// ChannelUsage reports how many sectors carry data in one channel.
type ChannelUsage struct {
	Channel  string `yaml:"channel"`
	Extended bool   `yaml:"extended"`
	Sectors  int    `yaml:"sectors"`
}

// Report summarizes how one run of subchannel data uses its channels.
type Report struct {
	Sectors         int            `yaml:"sectors"`
	RunTime         string         `yaml:"run_time"`         // MM:SS:FF covered by the sectors
	BasicDataOnly   bool           `yaml:"basic_data_only"`  // see Data.ContainsBasicDataOnly
	ExtendedSectors int            `yaml:"extended_sectors"` // sectors with data in R-W
	Channels        []ChannelUsage `yaml:"channels"`         // channels carrying data anywhere, in order
}

// Scan parses data and surveys the result. Parse failures are
// returned unchanged.
func (s *Scanner) Scan(data []byte) (Report, error) {
	d, err := Parse(data)
	if err != nil {
		s.logf("scan aborted: %v", err)
		return Report{}, err
	}
	return s.Survey(d), nil
}

// Survey walks already-parsed subchannel data and reports on its
// channel usage.
func (s *Scanner) Survey(d Data) Report {
	report := Report{
		Sectors:       len(d.Sectors),
		RunTime:       d.Duration().String(),
		BasicDataOnly: d.ContainsBasicDataOnly(),
	}
	var counts [ChannelsPerSector]int
	for i, sector := range d.Sectors {
		for _, code := range sector.Subcodes {
			if !code.IsEmpty() {
				counts[code.Channel]++
			}
		}
		if !sector.ContainsBasicDataOnly() {
			report.ExtendedSectors++
			s.logf("sector %d (%s): data in channels %v", i, SectorsToMSF(i), sector.DataChannels())
		}
	}
	for i, count := range counts {
		if count == 0 {
			continue
		}
		channel := Channel(i)
		report.Channels = append(report.Channels, ChannelUsage{
			Channel:  channel.String(),
			Extended: channel.Extended(),
			Sectors:  count,
		})
	}
	s.logf("surveyed %d sectors (%s): %d with extended data", report.Sectors, report.RunTime, report.ExtendedSectors)
	return report
}

func (s *Scanner) logf(format string, v ...any) {
	switch s.LogMode {
	case LogModeStdErr:
		log.Printf(format, v...)
	case LogModeLogger:
		if s.Logger != nil {
			s.Logger.Printf(format, v...)
		}
	}
}

// WriteYAML writes the report to w as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("subcode: encode report: %w", err)
	}
	return encoder.Close()
}
