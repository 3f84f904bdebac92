//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tourease/internal/domain/booking"
	"tourease/internal/domain/listing"
	"tourease/internal/domain/user"
	"tourease/internal/infra/kvstore"
	"tourease/internal/infra/repository"
	"tourease/internal/pkg/clock"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	listings  *repository.ListingRepository
	accounts  *repository.AccountRepository
	bookings  *repository.BookingRepository
	clk       *clock.MockClock
	commands  commands.BookingCommands
	listingID uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.setup(0, 30*time.Minute)
}

func (s *BookingCommandsTestSuite) setup(paymentDelay, flowTTL time.Duration) {
	store := kvstore.NewMemoryStore()
	s.listings = repository.NewListingRepository(store)
	s.accounts = repository.NewAccountRepository(store)
	s.bookings = repository.NewBookingRepository(store)
	s.clk = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingCommands(s.listings, s.accounts, s.bookings, s.clk, paymentDelay, flowTTL)

	title, err := listing.NewTitle("Lakeside Cottage")
	s.Require().NoError(err)
	city, err := listing.NewCity("Udaipur")
	s.Require().NoError(err)
	rate, err := listing.NewNightlyRate(7500)
	s.Require().NoError(err)
	desc, err := listing.NewDescription("")
	s.Require().NoError(err)
	l, err := listing.NewListing(uuid.New(), title, city, rate, desc, []string{"data:image/png;base64,x"}, s.clk.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.listings.Create(context.Background(), l))
	s.listingID = l.ID()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func guestDetails() commands.GuestDetailsInput {
	return commands.GuestDetailsInput{
		Name:           "Asha Rao",
		DocumentNumber: "P1234567",
		DocumentImage:  "data:image/png;base64,aGVsbG8=",
		StartDate:      "2026-03-10",
		EndDate:        "2026-03-13",
	}
}

func (s *BookingCommandsTestSuite) TestFullFlow() {
	ctx := context.Background()

	flow, err := s.commands.StartFlow(ctx, commands.StartFlowInput{ListingID: s.listingID})
	s.Require().NoError(err)
	s.Equal(string(booking.StepGuestDetails), flow.Step)
	s.Equal("Lakeside Cottage", flow.ListingTitle)

	flow, err = s.commands.SubmitGuestDetails(ctx, flow.ID, guestDetails())
	s.Require().NoError(err)
	s.Equal(string(booking.StepPayment), flow.Step)
	s.Equal(3, flow.Nights)
	s.Equal(int64(22500), flow.TotalCents)

	view, err := s.commands.Confirm(ctx, flow.ID, commands.ConfirmInput{
		Method: "upi",
		VPA:    "bob@examplebank",
	})
	s.Require().NoError(err)
	s.Equal("confirmed", view.Status)
	s.Equal(3, view.Nights)
	s.Equal(int64(22500), view.TotalCents)
	s.Require().NotNil(view.Payment.UPI)
	s.Equal("b*b@examplebank", view.Payment.UPI.MaskedVPA)

	// Completed flow is dropped from the registry.
	_, err = s.commands.GetFlow(ctx, flow.ID)
	s.Require().ErrorIs(err, errs.ErrFlowNotFound)

	rec, err := s.bookings.FindByID(ctx, view.ID)
	s.Require().NoError(err)
	s.Nil(rec.UserID)
}

func (s *BookingCommandsTestSuite) TestBackKeepsEnteredValues() {
	ctx := context.Background()

	flow, err := s.commands.StartFlow(ctx, commands.StartFlowInput{ListingID: s.listingID})
	s.Require().NoError(err)
	flow, err = s.commands.SubmitGuestDetails(ctx, flow.ID, guestDetails())
	s.Require().NoError(err)

	flow, err = s.commands.Back(ctx, flow.ID)
	s.Require().NoError(err)
	s.Equal(string(booking.StepGuestDetails), flow.Step)
	s.Equal("Asha Rao", flow.GuestName)
	s.Equal("2026-03-10", flow.StartDate)
}

func (s *BookingCommandsTestSuite) TestValidationFailureKeepsStep() {
	ctx := context.Background()

	flow, err := s.commands.StartFlow(ctx, commands.StartFlowInput{ListingID: s.listingID})
	s.Require().NoError(err)

	in := guestDetails()
	in.Name = ""
	_, err = s.commands.SubmitGuestDetails(ctx, flow.ID, in)
	s.Require().ErrorIs(err, booking.ErrMissingField)

	current, err := s.commands.GetFlow(ctx, flow.ID)
	s.Require().NoError(err)
	s.Equal(string(booking.StepGuestDetails), current.Step)
}

func (s *BookingCommandsTestSuite) TestSignedInIdentityPinning() {
	ctx := context.Background()

	auth := commands.NewAuthCommands(s.accounts, stubTokenIssuer{}, s.clk)
	result, err := auth.SignUp(ctx, commands.SignUpInput{
		Username:    "asha",
		DisplayName: "Asha Rao",
		Password:    "s3cret-pass",
		Role:        "guest",
	})
	s.Require().NoError(err)

	flow, err := s.commands.StartFlow(ctx, commands.StartFlowInput{
		ListingID: s.listingID,
		AccountID: &result.AccountID,
	})
	s.Require().NoError(err)

	in := guestDetails()
	in.Name = "Someone Else"
	_, err = s.commands.SubmitGuestDetails(ctx, flow.ID, in)
	s.Require().ErrorIs(err, booking.ErrIdentityMismatch)

	flow, err = s.commands.SubmitGuestDetails(ctx, flow.ID, guestDetails())
	s.Require().NoError(err)

	view, err := s.commands.Confirm(ctx, flow.ID, commands.ConfirmInput{Method: "cash"})
	s.Require().NoError(err)
	s.Require().NotNil(view.UserID)
	s.Equal(result.AccountID, *view.UserID)
}

func (s *BookingCommandsTestSuite) TestAbortedPaymentCommitsNothing() {
	s.setup(200*time.Millisecond, 30*time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	flow, err := s.commands.StartFlow(ctx, commands.StartFlowInput{ListingID: s.listingID})
	s.Require().NoError(err)
	flow, err = s.commands.SubmitGuestDetails(ctx, flow.ID, guestDetails())
	s.Require().NoError(err)

	cancel()
	_, err = s.commands.Confirm(ctx, flow.ID, commands.ConfirmInput{Method: "cash"})
	s.Require().ErrorIs(err, booking.ErrPaymentAborted)

	// Flow survives on the payment step and can be confirmed again.
	current, err := s.commands.GetFlow(context.Background(), flow.ID)
	s.Require().NoError(err)
	s.Equal(string(booking.StepPayment), current.Step)

	bookings, err := s.bookings.FindByUser(context.Background(), uuid.New())
	s.Require().NoError(err)
	s.Empty(bookings)

	view, err := s.commands.Confirm(context.Background(), flow.ID, commands.ConfirmInput{Method: "cash"})
	s.Require().NoError(err)
	s.Equal("confirmed", view.Status)
}

func (s *BookingCommandsTestSuite) TestIdleFlowExpires() {
	s.setup(0, 10*time.Minute)
	ctx := context.Background()

	flow, err := s.commands.StartFlow(ctx, commands.StartFlowInput{ListingID: s.listingID})
	s.Require().NoError(err)

	s.clk.Add(11 * time.Minute)
	_, err = s.commands.GetFlow(ctx, flow.ID)
	s.Require().ErrorIs(err, errs.ErrFlowNotFound)
}

func (s *BookingCommandsTestSuite) TestStartFlowUnknownListing() {
	_, err := s.commands.StartFlow(context.Background(), commands.StartFlowInput{ListingID: uuid.New()})
	s.Require().ErrorIs(err, errs.ErrListingNotFound)
}

func (s *BookingCommandsTestSuite) TestDeleteBooking() {
	ctx := context.Background()

	auth := commands.NewAuthCommands(s.accounts, stubTokenIssuer{}, s.clk)
	result, err := auth.SignUp(ctx, commands.SignUpInput{
		Username:    "asha",
		DisplayName: "Asha Rao",
		Password:    "s3cret-pass",
		Role:        "guest",
	})
	s.Require().NoError(err)

	flow, err := s.commands.StartFlow(ctx, commands.StartFlowInput{
		ListingID: s.listingID,
		AccountID: &result.AccountID,
	})
	s.Require().NoError(err)
	_, err = s.commands.SubmitGuestDetails(ctx, flow.ID, guestDetails())
	s.Require().NoError(err)
	view, err := s.commands.Confirm(ctx, flow.ID, commands.ConfirmInput{Method: "cash"})
	s.Require().NoError(err)

	s.Run("another user cannot delete", func() {
		err := s.commands.DeleteBooking(ctx, view.ID, uuid.New())
		s.Require().ErrorIs(err, errs.ErrNotBookingOwner)
	})

	s.Run("owner deletes", func() {
		s.Require().NoError(s.commands.DeleteBooking(ctx, view.ID, result.AccountID))

		err := s.commands.DeleteBooking(ctx, view.ID, result.AccountID)
		s.Require().ErrorIs(err, errs.ErrBookingNotFound)
	})
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) GenerateToken(_ uuid.UUID, _ user.Role) (string, error) {
	return "stub-token", nil
}
