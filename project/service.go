package project

import (
	"context"
	"github.com/dummyhome/controller/inventory"
	"github.com/dummyhome/controller/schema"
	"github.com/shimmeringbee/logwrap"
	"sync"
	"time"
)

type ServiceError string

func (e ServiceError) Error() string {
	return string(e)
}

const ErrSubmitInFlight = ServiceError("a submit is already in progress")

const DefaultRequestTimeout = 30 * time.Second

// Service ties the store, codec and transport together: it loads the
// remote project file into the store and submits the store's tree back
// out. It owns the id allocator and the submit in-flight flag. A
// second submit while one is outstanding is rejected, never queued.
type Service struct {
	store       *inventory.Store
	client      *Client
	alloc       *schema.Allocator
	projectName string
	timeout     time.Duration

	logger    logwrap.Logger
	publisher inventory.EventPublisher

	submitLock *sync.Mutex
	submitting bool
}

func NewService(store *inventory.Store, client *Client, alloc *schema.Allocator, projectName string, timeout time.Duration, logger logwrap.Logger, publisher inventory.EventPublisher) *Service {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	if publisher == nil {
		publisher = inventory.NullEventPublisher
	}

	return &Service{
		store:       store,
		client:      client,
		alloc:       alloc,
		projectName: projectName,
		timeout:     timeout,
		logger:      logger,
		publisher:   publisher,
		submitLock:  &sync.Mutex{},
	}
}

// Load fetches and decodes the remote project file into the store,
// rebaselining it. On transport failure the store keeps whatever it
// already holds and the error is returned for the caller to surface.
func (s *Service) Load(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.client.Fetch(ctx)
	if err != nil {
		s.logger.LogError(ctx, "Failed to fetch remote project file, keeping current inventory.", logwrap.Err(err))
		return err
	}

	rooms := schema.Decode(data)
	s.store.SetRooms(rooms)

	s.logger.LogInfo(ctx, "Loaded project file from remote endpoint.", logwrap.Datum("rooms", len(rooms)))
	return nil
}

// Submit encodes the current tree and uploads it. On acknowledgement
// the allocator resets and the store rebaselines, a failed upload
// leaves everything untouched.
func (s *Service) Submit(ctx context.Context) error {
	return s.submit(ctx, false)
}

// ClearAll uploads the empty project file and, on acknowledgement,
// resets the store to the default single room.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.submit(ctx, true)
}

// Submitting reports whether a submit is currently outstanding.
func (s *Service) Submitting() bool {
	s.submitLock.Lock()
	defer s.submitLock.Unlock()

	return s.submitting
}

func (s *Service) submit(ctx context.Context, clearAll bool) error {
	if err := s.beginSubmit(); err != nil {
		return err
	}
	defer s.endSubmit()

	// The timeout bounds the whole exchange so a stuck request can
	// never wedge the in-flight flag.
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rooms := s.store.Rooms()

	var payload schema.ProjectFile
	if clearAll {
		payload = schema.EncodeEmpty(rooms, s.client.ProjectID, s.projectName)
	} else {
		payload = schema.Encode(rooms, s.alloc, s.client.ProjectID, s.projectName)
	}

	if err := s.client.Put(ctx, payload); err != nil {
		s.logger.LogError(ctx, "Failed to upload project file, inventory unchanged.", logwrap.Err(err))
		s.publisher.Publish(inventory.ProjectSubmitFailed{Reason: err})
		return err
	}

	s.alloc.Reset()

	if clearAll {
		s.store.ResetToDefaults()
	} else {
		// Rebaseline to the snapshot that was uploaded, not the
		// current tree, mutations that landed mid-upload stay dirty.
		s.store.RebaselineTo(rooms)
	}

	s.publisher.Publish(inventory.ProjectSubmitted{Cleared: clearAll})
	s.logger.LogInfo(ctx, "Uploaded project file.", logwrap.Datum("cleared", clearAll), logwrap.Datum("rooms", len(rooms)))
	return nil
}

func (s *Service) beginSubmit() error {
	s.submitLock.Lock()
	defer s.submitLock.Unlock()

	if s.submitting {
		return ErrSubmitInFlight
	}

	s.submitting = true
	return nil
}

func (s *Service) endSubmit() {
	s.submitLock.Lock()
	defer s.submitLock.Unlock()

	s.submitting = false
}
