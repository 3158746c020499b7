package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

func TestTaskStatus_IsValid(t *testing.T) {
	for _, status := range types.AllTaskStatuses() {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}

	gt.B(t, types.TaskStatus("invalid").IsValid()).False()
	gt.B(t, types.TaskStatus("").IsValid()).False()
}

func TestTaskStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status types.TaskStatus
		want   bool
	}{
		{name: "declined is terminal", status: types.TaskStatusDeclined, want: true},
		{name: "completed is terminal", status: types.TaskStatusCompleted, want: true},
		{name: "pending is not terminal", status: types.TaskStatusPending, want: false},
		{name: "revision-requested is not terminal", status: types.TaskStatusRevisionRequested, want: false},
		{name: "in-progress is not terminal", status: types.TaskStatusInProgress, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.status.IsTerminal()).True()
			} else {
				gt.B(t, tt.status.IsTerminal()).False()
			}
		})
	}
}

func TestParseTaskStatus(t *testing.T) {
	got, err := types.ParseTaskStatus("revision-requested")
	gt.NoError(t, err)
	gt.V(t, got).Equal(types.TaskStatusRevisionRequested)

	_, err = types.ParseTaskStatus("done")
	gt.Error(t, err)
}

func TestTaskStatus_Normalize(t *testing.T) {
	gt.V(t, types.TaskStatus("").Normalize()).Equal(types.TaskStatusPending)
	gt.V(t, types.TaskStatusCompleted.Normalize()).Equal(types.TaskStatusCompleted)
}

func TestRequestStatus_IsValid(t *testing.T) {
	for _, status := range types.AllRequestStatuses() {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}

	gt.B(t, types.RequestStatus("held").IsValid()).False()
	gt.B(t, types.RequestStatus("").IsValid()).False()
}

func TestRequestStatus_TracksProgress(t *testing.T) {
	gt.B(t, types.RequestStatusAccepted.TracksProgress()).True()
	gt.B(t, types.RequestStatusInProgress.TracksProgress()).True()
	gt.B(t, types.RequestStatusPending.TracksProgress()).False()
	gt.B(t, types.RequestStatusDeclined.TracksProgress()).False()
	gt.B(t, types.RequestStatusCompleted.TracksProgress()).False()
}

func TestParseResponseDecision(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.ResponseDecision
		wantErr bool
	}{
		{name: "accepted", input: "accepted", want: types.DecisionAccepted},
		{name: "declined", input: "declined", want: types.DecisionDeclined},
		{name: "pending", input: "pending", want: types.DecisionPending},
		{name: "invalid", input: "maybe", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseResponseDecision(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

func TestResponseDecision_IsAnswered(t *testing.T) {
	gt.B(t, types.DecisionAccepted.IsAnswered()).True()
	gt.B(t, types.DecisionDeclined.IsAnswered()).True()
	gt.B(t, types.DecisionPending.IsAnswered()).False()
}

func TestPriority(t *testing.T) {
	gt.A(t, types.AllPriorities()).Length(4)

	gt.V(t, types.Priority("").Normalize()).Equal(types.PriorityMedium)
	gt.V(t, types.PriorityUrgent.Normalize()).Equal(types.PriorityUrgent)

	got, err := types.ParsePriority("urgent")
	gt.NoError(t, err)
	gt.V(t, got).Equal(types.PriorityUrgent)

	_, err = types.ParsePriority("critical")
	gt.Error(t, err)
}

func TestDispositionStatus(t *testing.T) {
	for _, status := range types.AllDispositionStatuses() {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}

	gt.V(t, types.DispositionStatus("").Normalize()).Equal(types.DispositionStatusActive)

	_, err := types.ParseDispositionStatus("archived")
	gt.Error(t, err)
}

func TestNotificationType(t *testing.T) {
	for _, nt := range types.AllNotificationTypes() {
		gt.B(t, nt.IsValid()).
			Describef("Type %s should be valid", nt).
			True()
	}

	got, err := types.ParseNotificationType("request-declined")
	gt.NoError(t, err)
	gt.V(t, got).Equal(types.NotificationRequestDeclined)

	_, err = types.ParseNotificationType("request-held")
	gt.Error(t, err)
}

func TestNewIDs(t *testing.T) {
	gt.S(t, types.NewTaskID().String()).NotEqual("")
	gt.S(t, types.NewRequestID().String()).NotEqual("")
	gt.S(t, types.NewDispositionID().String()).NotEqual("")
	gt.S(t, types.NewMeetingID().String()).NotEqual("")
	gt.S(t, types.NewNotificationID().String()).NotEqual("")

	gt.V(t, types.NewRequestID()).NotEqual(types.NewRequestID())
}
