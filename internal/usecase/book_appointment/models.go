package book_appointment

import (
	"time"

	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// PatientData данные пациента из формы бронирования
type PatientData struct {
	FirstName string  // Имя
	LastName  string  // Фамилия
	Document  string  // Номер документа (ключ дедупликации)
	Phone     string  // Контактный телефон
	Email     *string // Email (опционально)
}

// Request модель запроса на запись к врачу
type Request struct {
	Patient  PatientData      // Данные пациента
	DoctorID int64            // ID врача
	Date     time.Time        // Дата приёма (без времени)
	Time     types.TimeString // Время слота (например, "10:30")
	Notes    *string          // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	PatientID       int64            // ID пациента (нового или найденного)
	DoctorID        int64            // ID врача
	AppointmentDate time.Time        // Дата приёма
	AppointmentTime types.TimeString // Время приёма
	Status          string           // Статус записи
	Notes           *string          // Заметки

	// Денормализованные данные
	PatientName     string  // Имя пациента
	PatientDocument string  // Документ пациента
	PatientPhone    string  // Телефон пациента
	DoctorName      string  // Имя врача
	DoctorSpecialty *string // Специальность врача

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
