package statistics

import (
    "context"

    "github.com/pm5/Disfactory/internal/ports"
)

// PhotoCount counts every image of the factories p selects.
func (s *Service) PhotoCount(ctx context.Context, p ports.Params) (int, error) {
    req, err := s.parse(p)
    if err != nil {
        return 0, err
    }
    return s.count(ctx, "images", req.filter, ports.StatsReader.CountImages)
}

// ReportRecordCount counts every report row of the factories p selects.
func (s *Service) ReportRecordCount(ctx context.Context, p ports.Params) (int, error) {
    req, err := s.parse(p)
    if err != nil {
        return 0, err
    }
    return s.count(ctx, "report_records", req.filter, ports.StatsReader.CountReportRecords)
}
