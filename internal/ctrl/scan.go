package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/gate-access/internal/dto"
	md "github.com/JMURv/gate-access/internal/models"
	"github.com/JMURv/gate-access/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type scanCtrl interface {
	ProcessScan(ctx context.Context, d *dto.DeviceContext, req *dto.ScanRequest, ip string) (*dto.ScanResponse, error)
}

type scanRepo interface {
	GetTicketByCode(ctx context.Context, code string) (*md.Ticket, error)
	RedeemTicket(ctx context.Context, ticketID uuid.UUID, entry *md.ScanLogEntry) (*md.ScanLogEntry, error)
	CreateScanLog(ctx context.Context, entry *md.ScanLogEntry) (*md.ScanLogEntry, error)
	GetRecentScanLog(ctx context.Context, deviceID uuid.UUID, ticketCode string, since time.Time) (*md.ScanLogEntry, error)
}

// decideOutcome classifies a scan attempt. It is a pure function of the
// current ticket state and the requested event; only VALID may mutate.
func decideOutcome(t *md.Ticket, eventID uuid.UUID) (md.Outcome, string) {
	if t == nil {
		return md.OutcomeNotFound, "Ticket not found"
	}

	if t.EventID != eventID {
		return md.OutcomeWrongEvent, "Ticket belongs to a different event"
	}

	switch t.Status {
	case md.TicketStatusBlocked:
		return md.OutcomeBlocked, "Ticket is blocked"
	case md.TicketStatusUsed:
		return md.OutcomeAlreadyUsed, "Ticket has already been used"
	case md.TicketStatusValid:
		return md.OutcomeValid, "Access granted"
	default:
		return md.OutcomeExpired, "Ticket is expired"
	}
}

// ProcessScan runs the redemption protocol: duplicate detection, outcome
// classification, the at-most-one status transition, and exactly one audit
// row per non-duplicate attempt.
func (c *Controller) ProcessScan(
	ctx context.Context,
	d *dto.DeviceContext,
	req *dto.ScanRequest,
	ip string,
) (*dto.ScanResponse, error) {
	const op = "scan.ProcessScan.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	since := time.Now().Add(-c.scan.IdempotencyWindow)
	prior, err := c.repo.GetRecentScanLog(ctx, d.DeviceID, req.TicketCode, since)
	if err == nil {
		return c.replayScan(ctx, d, prior), nil
	}

	if !errors.Is(err, repo.ErrNotFound) {
		if c.scan.FailClosed {
			return nil, err
		}

		// Fail-open: a broken duplicate check must not stop the gate, at
		// the cost of a possible double audit row.
		zap.L().Warn(
			"Idempotency lookup failed, treating scan as fresh",
			zap.String("deviceID", d.DeviceID.String()),
			zap.String("code", req.TicketCode),
			zap.Error(err),
		)
	}

	ticket, err := c.repo.GetTicketByCode(ctx, req.TicketCode)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	outcome, message := decideOutcome(ticket, req.EventID)

	entry := &md.ScanLogEntry{
		TicketCode: req.TicketCode,
		EventID:    req.EventID,
		DeviceID:   d.DeviceID,
		StaffID:    d.StaffID,
		Outcome:    outcome,
		Message:    message,
		ScannedAt:  time.Now(),
		Lat:        req.Lat,
		Lon:        req.Lon,
		IP:         ip,
	}
	if ticket != nil {
		entry.TicketID = &ticket.ID
	}

	var logged *md.ScanLogEntry
	if outcome == md.OutcomeValid {
		logged, err = c.repo.RedeemTicket(ctx, ticket.ID, entry)
		if errors.Is(err, repo.ErrNotRedeemable) {
			// A concurrent scan won the compare-and-swap; this attempt
			// degrades to the outcome of the state it lost to.
			ticket, err = c.repo.GetTicketByCode(ctx, req.TicketCode)
			if err != nil {
				return nil, err
			}

			outcome, message = decideOutcome(ticket, req.EventID)
			entry.Outcome, entry.Message = outcome, message
			logged, err = c.repo.CreateScanLog(ctx, entry)
		}
		if err != nil {
			return nil, err
		}

		if outcome == md.OutcomeValid {
			ticket.Status = md.TicketStatusUsed
			ticket.ScannedAt = &entry.ScannedAt
		}
	} else {
		if logged, err = c.repo.CreateScanLog(ctx, entry); err != nil {
			return nil, err
		}
	}

	res := &dto.ScanResponse{
		Result:  outcome,
		Message: message,
		ScannedBy: dto.ScannedBy{
			DeviceID:       d.DeviceID,
			DevicePublicID: d.DevicePublicID,
			StaffUserID:    d.StaffID,
		},
		Audit: dto.ScanAudit{
			ScanLogID:       logged.ID,
			ScannedAtServer: logged.ScannedAt,
			Lat:             logged.Lat,
			Lon:             logged.Lon,
		},
	}
	if ticket != nil {
		res.Ticket = &dto.ScannedTicket{
			ID:         ticket.ID,
			Code:       ticket.Code,
			Status:     ticket.Status,
			HolderName: ticket.HolderName,
		}
	}

	return res, nil
}

// replayScan rebuilds the response from the stored audit row so a retry of
// the same physical scan returns identical result, message and scan log id
// without re-running the state machine or writing anything.
func (c *Controller) replayScan(
	ctx context.Context,
	d *dto.DeviceContext,
	prior *md.ScanLogEntry,
) *dto.ScanResponse {
	res := &dto.ScanResponse{
		Result:  prior.Outcome,
		Message: prior.Message,
		ScannedBy: dto.ScannedBy{
			DeviceID:       d.DeviceID,
			DevicePublicID: d.DevicePublicID,
			StaffUserID:    prior.StaffID,
		},
		Audit: dto.ScanAudit{
			ScanLogID:       prior.ID,
			ScannedAtServer: prior.ScannedAt,
			Lat:             prior.Lat,
			Lon:             prior.Lon,
		},
	}

	if prior.TicketID != nil {
		ticket, err := c.repo.GetTicketByCode(ctx, prior.TicketCode)
		if err != nil {
			zap.L().Warn(
				"Failed to hydrate ticket on replay",
				zap.String("code", prior.TicketCode),
				zap.Error(err),
			)
			return res
		}

		res.Ticket = &dto.ScannedTicket{
			ID:         ticket.ID,
			Code:       ticket.Code,
			Status:     ticket.Status,
			HolderName: ticket.HolderName,
		}
	}

	return res
}
