package services

import (
	"context"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
)

// TimecardReaderSvc defines read operations for timecard data
type TimecardReaderSvc interface {
	// GetTimecard retrieves a timecard header with its ordered daily entries.
	GetTimecard(ctx context.Context, timecardID string, actor domain.Actor) (*dto.TimecardResponse, error)
}

// TimecardWriterSvc defines write operations for timecard data
type TimecardWriterSvc interface {
	// OpenTimecard creates a new draft timecard with one daily entry per day
	// of the requested period.
	OpenTimecard(ctx context.Context, req dto.OpenTimecardRequest, actor domain.Actor) (*dto.TimecardResponse, error)

	// EditTimecard runs the edit state machine: permission check, transition
	// validation, field diffing, persistence, then audit recording.
	EditTimecard(ctx context.Context, timecardID string, req dto.EditTimecardRequest, actor domain.Actor) (*dto.EditTimecardResponse, error)
}

// TimecardSvcFacade combines all timecard-related service interfaces
type TimecardSvcFacade interface {
	TimecardReaderSvc
	TimecardWriterSvc
}
