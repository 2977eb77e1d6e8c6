package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/dto"
	md "github.com/JMURv/gate-access/internal/models"
	"github.com/JMURv/gate-access/internal/repo"
	"github.com/JMURv/gate-access/internal/repo/s3"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type ticketCtrl interface {
	CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (*dto.CreateTicketResponse, error)
	BlockTicket(ctx context.Context, ticketID uuid.UUID) error
	ListScanLogs(ctx context.Context, eventID uuid.UUID, page, size int) (*dto.PaginatedScanLogResponse, error)
	ExportScanLogs(ctx context.Context, eventID uuid.UUID) (*dto.ExportScanLogsResponse, error)
}

type ticketRepo interface {
	CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (uuid.UUID, error)
	BlockTicket(ctx context.Context, ticketID uuid.UUID) error
	ListScanLogs(ctx context.Context, eventID uuid.UUID, page, size int) (*dto.PaginatedScanLogResponse, error)
	ListAllScanLogs(ctx context.Context, eventID uuid.UUID) ([]md.ScanLogEntry, error)
}

// Scan-log lists are append-only and short-lived in cache; staleness is
// bounded by the TTL rather than invalidated on every scan.
const scanLogsListKey = "scan-logs-list:%v:%v:%v"

func (c *Controller) CreateTicket(
	ctx context.Context,
	req *dto.CreateTicketRequest,
) (*dto.CreateTicketResponse, error) {
	const op = "tickets.CreateTicket.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateTicket(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return &dto.CreateTicketResponse{ID: id, Code: req.Code}, nil
}

func (c *Controller) BlockTicket(ctx context.Context, ticketID uuid.UUID) error {
	const op = "tickets.BlockTicket.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.BlockTicket(ctx, ticketID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

func (c *Controller) ListScanLogs(
	ctx context.Context,
	eventID uuid.UUID,
	page, size int,
) (*dto.PaginatedScanLogResponse, error) {
	const op = "scanlogs.ListScanLogs.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedScanLogResponse{}
	cacheKey := fmt.Sprintf(scanLogsListKey, eventID, page, size)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListScanLogs(ctx, eventID, page, size)
	if err != nil {
		return nil, err
	}

	// Scan-log pages are append-only history, so they can live longer in
	// cache than device lists.
	c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, res)
	return res, nil
}

// ExportScanLogs archives the full audit trail of an event as a JSON object
// in S3 and returns the object path.
func (c *Controller) ExportScanLogs(
	ctx context.Context,
	eventID uuid.UUID,
) (*dto.ExportScanLogsResponse, error) {
	const op = "scanlogs.ExportScanLogs.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	logs, err := c.repo.ListAllScanLogs(ctx, eventID)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(logs)
	if err != nil {
		return nil, err
	}

	object, err := c.s3.UploadArchive(
		ctx, &s3.UploadArchiveRequest{
			Name:        fmt.Sprintf("scan-logs/%s/%d.json", eventID, time.Now().Unix()),
			ContentType: "application/json",
			Data:        bytes,
		},
	)
	if err != nil {
		return nil, err
	}

	return &dto.ExportScanLogsResponse{Object: object, Count: len(logs)}, nil
}
