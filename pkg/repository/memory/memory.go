package memory

import (
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and tests. All returned
// entities are deep copies; callers never share memory with the store.
type Memory struct {
	task         *taskRepository
	request      *requestRepository
	disposition  *dispositionRepository
	meeting      *meetingRepository
	notification *notificationRepository
	member       *memberRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		task:         newTaskRepository(),
		request:      newRequestRepository(),
		disposition:  newDispositionRepository(),
		meeting:      newMeetingRepository(),
		notification: newNotificationRepository(),
		member:       newMemberRepository(),
	}
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) Request() interfaces.RequestRepository {
	return m.request
}

func (m *Memory) Disposition() interfaces.DispositionRepository {
	return m.disposition
}

func (m *Memory) Meeting() interfaces.MeetingRepository {
	return m.meeting
}

func (m *Memory) Notification() interfaces.NotificationRepository {
	return m.notification
}

func (m *Memory) Member() interfaces.MemberRepository {
	return m.member
}

func (m *Memory) Close() error {
	return nil
}
