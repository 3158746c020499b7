package usecase

import (
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/utils/keylock"
)

type UseCases struct {
	repo      interfaces.Repository
	sink      interfaces.NotificationSink
	directory interfaces.UserDirectory
	mailer    interfaces.EmailGateway

	Task         *TaskUseCase
	Request      *RequestUseCase
	Disposition  *DispositionUseCase
	Meeting      *MeetingUseCase
	Notification *NotificationUseCase
}

type Option func(*UseCases)

func WithNotificationSink(sink interfaces.NotificationSink) Option {
	return func(uc *UseCases) {
		uc.sink = sink
	}
}

func WithUserDirectory(dir interfaces.UserDirectory) Option {
	return func(uc *UseCases) {
		uc.directory = dir
	}
}

func WithEmailGateway(gw interfaces.EmailGateway) Option {
	return func(uc *UseCases) {
		uc.mailer = gw
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	locks := keylock.New()

	uc.Task = NewTaskUseCase(repo, uc.sink, uc.directory, locks)
	uc.Request = NewRequestUseCase(repo, uc.sink, uc.directory, locks)
	uc.Disposition = NewDispositionUseCase(repo, uc.directory, locks)
	uc.Meeting = NewMeetingUseCase(repo, uc.sink, uc.directory, uc.mailer)
	uc.Notification = NewNotificationUseCase(repo)

	return uc
}
