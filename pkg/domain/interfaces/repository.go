package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Task() TaskRepository
	Request() RequestRepository
	Disposition() DispositionRepository
	Meeting() MeetingRepository
	Notification() NotificationRepository
	Member() MemberRepository

	Close() error
}
