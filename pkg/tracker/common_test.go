package tracker

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/glucolog/health-tracker-service/pkg/db"
	"github.com/glucolog/health-tracker-service/pkg/tracker/mocks"
	"go.uber.org/mock/gomock"
)

func GetMockTrackerWithMemorySqliteDialector(t *testing.T, useMockReading, useMockEmergency, useMockNotifier bool) (
	*gomock.Controller,
	*Tracker,
	*mocks.MockIReading,
	*mocks.MockIEmergency,
	*mocks.MockINotifier,
) {
	ctrl := gomock.NewController(t)

	mockReading := mocks.NewMockIReading(ctrl)
	mockEmergency := mocks.NewMockIEmergency(ctrl)
	mockNotifier := mocks.NewMockINotifier(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	trackerInstance := (&Tracker{Db: *dbInstance})

	readingService := trackerInstance.GetIReading()
	if useMockReading {
		readingService = mockReading
	}

	emergencyService := trackerInstance.GetIEmergency()
	if useMockEmergency {
		emergencyService = mockEmergency
	}

	var notifier INotifier
	if useMockNotifier {
		notifier = mockNotifier
	}

	trackerInstance.WithServices(ServiceOpts{
		Reading:   readingService,
		Emergency: emergencyService,
		Profile:   trackerInstance.GetIProfile(),
		Account:   trackerInstance.GetIAccount(),
		Notifier:  notifier,
	})

	return ctrl, trackerInstance, mockReading, mockEmergency, mockNotifier
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
