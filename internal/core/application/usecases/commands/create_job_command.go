package commands

import (
	"errors"
	"time"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrTitleIsRequired   = errors.New("title is required")
	ErrAddressIsRequired = errors.New("address is required")
	ErrBudgetIsInvalid   = errors.New("budget must not be negative")
)

// CreateJobCommand represents a request to post a new job.
// Encapsulates everything a job listing carries: the work description, the
// category, the job site location, the budget and the scheduling window.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobCommand(jobID, clientID, "Fix kitchen sink", "",
//	    kernel.CategoryPlumbing, location, "12 Baker Street, Springfield",
//	    150, deadline, "10:00", "12:00")
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	clientID    kernel.UUID
	title       string
	description string
	category    kernel.Category
	location    kernel.GeoPoint
	address     string
	budget      float64
	deadline    time.Time
	timeStart   string
	timeEnd     string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to post a new job.
// Validates identifiers, the category, the location, and that title and
// address are present; deeper scheduling validation happens on the aggregate.
func NewCreateJobCommand(
	jobID kernel.UUID,
	clientID kernel.UUID,
	title string,
	description string,
	category kernel.Category,
	location kernel.GeoPoint,
	address string,
	budget float64,
	deadline time.Time,
	timeStart string,
	timeEnd string,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		description: description,
		deadline:    deadline,
		timeStart:   timeStart,
		timeEnd:     timeEnd,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setClientID(clientID),
		jobCommand.setTitle(title),
		jobCommand.setCategory(category),
		jobCommand.setLocation(location),
		jobCommand.setAddress(address),
		jobCommand.setBudget(budget),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateJobCommandIsNotConstructed if validation fails.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ClientID returns the identity of the poster.
func (c CreateJobCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Title returns the short work description.
func (c CreateJobCommand) Title() string {
	return c.title
}

// Description returns the free-text details.
func (c CreateJobCommand) Description() string {
	return c.description
}

// Category returns the job's category tag.
func (c CreateJobCommand) Category() kernel.Category {
	return c.category
}

// Location returns the job site coordinates.
func (c CreateJobCommand) Location() kernel.GeoPoint {
	return c.location
}

// Address returns the human-readable job site address.
func (c CreateJobCommand) Address() string {
	return c.address
}

// Budget returns the offered amount.
func (c CreateJobCommand) Budget() float64 {
	return c.budget
}

// Deadline returns the scheduled date of the work.
func (c CreateJobCommand) Deadline() time.Time {
	return c.deadline
}

// TimeStart returns the window start clock time in "HH:MM" form.
func (c CreateJobCommand) TimeStart() string {
	return c.timeStart
}

// TimeEnd returns the window end clock time in "HH:MM" form.
func (c CreateJobCommand) TimeEnd() string {
	return c.timeEnd
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateJobCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateJobCommand) setCategory(category kernel.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateJobCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateJobCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateJobCommand) setBudget(budget float64) error {
	if budget < 0 {
		return ErrBudgetIsInvalid
	}

	c.budget = budget
	return nil
}
