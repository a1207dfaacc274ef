package tracker

import (
	"errors"
	"strings"

	"github.com/glucolog/health-tracker-service/pkg/common"
	"github.com/glucolog/health-tracker-service/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func (t *Tracker) register(email, password, fullName string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldTrackerCategory, common.LoggerCategoryAccount),
	)

	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := t.Db.Conn.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := t.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	// profile is provisioned together with the account
	profile := models.Profile{
		UserID:           user.ID,
		FullName:         fullName,
		TelegramContacts: []string{},
		SecondaryEmails:  []string{},
	}
	if err := t.Db.Conn.Create(&profile).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered user", zap.String("user_id", user.ID))

	return &user, nil
}

func (t *Tracker) authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := t.Db.Conn.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

type IAccountImpl struct {
	tracker *Tracker
}

func (ia *IAccountImpl) Register(email, password, fullName string) (*models.User, error) {
	return ia.tracker.register(email, password, fullName)
}

func (ia *IAccountImpl) Authenticate(email, password string) (*models.User, error) {
	return ia.tracker.authenticate(email, password)
}

func (t *Tracker) GetIAccount() IAccount {
	return &IAccountImpl{tracker: t}
}
