// Package sheetstore implements the booking row store on a Google
// spreadsheet: a shared mutable table with no keys, no transactions and no
// query language beyond range reads. Every lookup is a full scan of the
// data range, which is acceptable at this table size; consistency is owned
// entirely by the service layer above.
package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	domain "github.com/OptiVisionCare/optic-booking/internal/domain/booking"
	"github.com/OptiVisionCare/optic-booking/internal/models"
)

// Column layout of the booking sheet, A through I.
const (
	colBookingID = iota
	colCustomerID
	colStatus
	colDate
	colTime
	colService
	colName
	colPhone
	colComments
	columnCount
)

type Config struct {
	SpreadsheetID       string
	SheetName           string
	ServiceAccountEmail string
	// PEM private key; "\n" escapes from env files are unfolded.
	PrivateKey string
}

type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.SpreadsheetID == "" || cfg.ServiceAccountEmail == "" || cfg.PrivateKey == "" {
		return nil, errors.New("sheetstore: missing spreadsheet credentials")
	}

	name := cfg.SheetName
	if name == "" {
		name = "Bookings"
	}

	conf := &oauthjwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheetstore: init sheets client: %w", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     name,
	}, nil
}

// --------------------------------------------------
// Scan
// --------------------------------------------------

type scannedRow struct {
	booking models.Booking
	// 1-based sheet row number, header included
	rowNum int
}

func (s *Store) scan(ctx context.Context) ([]scannedRow, error) {
	readRange := fmt.Sprintf("%s!A2:I", s.sheetName)

	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheetstore: read rows: %w", err)
	}

	rows := make([]scannedRow, 0, len(resp.Values))
	for i, values := range resp.Values {
		b := models.Booking{
			BookingID:  cell(values, colBookingID),
			CustomerID: cell(values, colCustomerID),
			Status:     cell(values, colStatus),
			Date:       cell(values, colDate),
			Time:       cell(values, colTime),
			Service:    cell(values, colService),
			Name:       cell(values, colName),
			Phone:      cell(values, colPhone),
			Comments:   cell(values, colComments),
		}
		if b.BookingID == "" {
			continue
		}
		rows = append(rows, scannedRow{booking: b, rowNum: i + 2})
	}

	return rows, nil
}

func cell(values []interface{}, idx int) string {
	if idx >= len(values) {
		return ""
	}
	return fmt.Sprintf("%v", values[idx])
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (s *Store) FindByBookingID(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	rows, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		if r.booking.BookingID == bookingID {
			b := r.booking
			return &b, nil
		}
	}

	return nil, domain.ErrNotFound
}

func (s *Store) FindActiveSlot(
	ctx context.Context,
	phone string,
	date string,
	timeLabel string,
) (*models.Booking, error) {

	rows, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		b := r.booking
		if b.Phone == phone && b.Date == date && b.Time == timeLabel && domain.IsActive(b.Status) {
			return &b, nil
		}
	}

	return nil, domain.ErrNotFound
}

func (s *Store) ListActiveByDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	rows, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Booking
	for _, r := range rows {
		if r.booking.Date == date && domain.IsActive(r.booking.Status) {
			out = append(out, r.booking)
		}
	}

	return out, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (s *Store) Append(
	ctx context.Context,
	b *models.Booking,
) error {

	vr := &sheets.ValueRange{
		Values: [][]interface{}{rowValues(b)},
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, fmt.Sprintf("%s!A:I", s.sheetName), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheetstore: append row: %w", err)
	}

	return nil
}

func (s *Store) Update(
	ctx context.Context,
	b *models.Booking,
) error {

	rows, err := s.scan(ctx)
	if err != nil {
		return err
	}

	rowNum := 0
	for _, r := range rows {
		if r.booking.BookingID == b.BookingID {
			rowNum = r.rowNum
			break
		}
	}
	if rowNum == 0 {
		return domain.ErrNotFound
	}

	vr := &sheets.ValueRange{
		Values: [][]interface{}{rowValues(b)},
	}

	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, fmt.Sprintf("%s!A%d:I%d", s.sheetName, rowNum, rowNum), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheetstore: update row %d: %w", rowNum, err)
	}

	return nil
}

func rowValues(b *models.Booking) []interface{} {
	values := make([]interface{}, columnCount)
	values[colBookingID] = b.BookingID
	values[colCustomerID] = b.CustomerID
	values[colStatus] = b.Status
	values[colDate] = b.Date
	values[colTime] = b.Time
	values[colService] = b.Service
	values[colName] = b.Name
	values[colPhone] = b.Phone
	values[colComments] = b.Comments
	return values
}

// Compile-time check
var _ domain.Store = (*Store)(nil)
