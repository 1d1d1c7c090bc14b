package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	_ "github.com/lib/pq"

	"github.com/m04kA/HMA-AdminService/internal/config"
	"github.com/m04kA/HMA-AdminService/internal/domain"
	appointmentRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/appointment"
	blogRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/blog"
	calendarRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/calendar"
	patientRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/patient"
	reminderRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/reminder"
	staffRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/staff"
	tutorialRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/tutorial"
	"github.com/m04kA/HMA-AdminService/pkg/ptr"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// Наполняет базу тестовыми данными для локальной разработки.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	ctx := context.Background()

	doctors, err := seedStaff(ctx, staffRepo.NewRepository(db))
	if err != nil {
		log.Fatalf("seed staff: %v", err)
	}

	patients, err := seedPatients(ctx, patientRepo.NewRepository(db), 30)
	if err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	if err := seedAppointments(ctx, appointmentRepo.NewRepository(db), doctors, patients); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	if err := seedBlog(ctx, blogRepo.NewRepository(db), doctors); err != nil {
		log.Fatalf("seed blog: %v", err)
	}

	if err := seedCalendar(ctx, calendarRepo.NewRepository(db), doctors); err != nil {
		log.Fatalf("seed calendar: %v", err)
	}

	if err := seedReminders(ctx, reminderRepo.NewRepository(db), doctors); err != nil {
		log.Fatalf("seed reminders: %v", err)
	}

	if err := seedTutorials(ctx, tutorialRepo.NewRepository(db), doctors); err != nil {
		log.Fatalf("seed tutorials: %v", err)
	}

	log.Println("seed complete")
}

var specialties = []string{
	"Кардиология",
	"Дерматология",
	"Неврология",
	"Педиатрия",
	"Офтальмология",
	"Терапия",
	"Ортопедия",
}

var departments = []string{
	"Терапевтическое отделение",
	"Хирургическое отделение",
	"Диагностика",
	"Приёмное отделение",
}

func seedStaff(ctx context.Context, repo *staffRepo.Repository) ([]*domain.Staff, error) {
	log.Println("seeding staff")

	var doctors []*domain.Staff

	// Врачи
	for i := 0; i < 8; i++ {
		spec := specialties[gofakeit.Number(0, len(specialties)-1)]
		s := &domain.Staff{
			FirstName:      gofakeit.FirstName(),
			LastName:       gofakeit.LastName(),
			Email:          gofakeit.Email(),
			Phone:          gofakeit.Phone(),
			Position:       "Врач",
			Department:     departments[gofakeit.Number(0, len(departments)-1)],
			Specialty:      &spec,
			Type:           domain.StaffDoctor,
			Status:         domain.StaffActive,
			HireDate:       gofakeit.DateRange(time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-1, 0, 0)),
			Bio:            ptr.Ptr(gofakeit.Sentence(12)),
			Certifications: types.StringArray{gofakeit.JobTitle()},
			Keywords:       types.StringArray{spec, "приём"},
		}

		created, err := repo.Create(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("create doctor: %w", err)
		}
		doctors = append(doctors, created)
	}

	// Остальной персонал
	other := []domain.StaffType{
		domain.StaffNurse,
		domain.StaffAdministrative,
		domain.StaffCallCenter,
		domain.StaffReception,
	}
	for _, staffType := range other {
		s := &domain.Staff{
			FirstName:  gofakeit.FirstName(),
			LastName:   gofakeit.LastName(),
			Email:      gofakeit.Email(),
			Phone:      gofakeit.Phone(),
			Position:   gofakeit.JobTitle(),
			Department: departments[gofakeit.Number(0, len(departments)-1)],
			Type:       staffType,
			Status:     domain.StaffActive,
			HireDate:   gofakeit.DateRange(time.Now().AddDate(-5, 0, 0), time.Now()),
		}

		if _, err := repo.Create(ctx, s); err != nil {
			return nil, fmt.Errorf("create staff: %w", err)
		}
	}

	return doctors, nil
}

func seedPatients(ctx context.Context, repo *patientRepo.Repository, count int) ([]*domain.Patient, error) {
	log.Printf("seeding %d patients", count)

	var patients []*domain.Patient
	for i := 0; i < count; i++ {
		birthDate := gofakeit.DateRange(time.Now().AddDate(-80, 0, 0), time.Now().AddDate(-18, 0, 0))
		p := &domain.Patient{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Document:  fmt.Sprintf("DOC-%08d", gofakeit.Number(0, 99999999)),
			Phone:     gofakeit.Phone(),
			Email:     ptr.Ptr(gofakeit.Email()),
			BirthDate: &birthDate,
			Address:   ptr.Ptr(gofakeit.Address().Address),
		}

		created, err := repo.Create(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("create patient: %w", err)
		}
		patients = append(patients, created)
	}

	return patients, nil
}

func seedAppointments(ctx context.Context, repo *appointmentRepo.Repository, doctors []*domain.Staff, patients []*domain.Patient) error {
	log.Println("seeding appointments")

	// По несколько записей каждому врачу на ближайшие дни.
	// Слоты раздаём по сетке, чтобы не упереться в уникальный индекс.
	for _, doctor := range doctors {
		for day := 0; day < 3; day++ {
			date := time.Now().AddDate(0, 0, day+1)
			slot := 0
			for i := 0; i < gofakeit.Number(2, 5); i++ {
				hour := domain.ScheduleStartHour + slot/2
				minute := (slot % 2) * domain.SlotStepMinutes
				slot += gofakeit.Number(1, 3)
				if hour >= domain.ScheduleEndHour {
					break
				}

				patient := patients[gofakeit.Number(0, len(patients)-1)]
				appt := &domain.Appointment{
					PatientID:       patient.ID,
					DoctorID:        doctor.ID,
					AppointmentDate: date,
					AppointmentTime: types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)),
					Status:          domain.AppointmentConfirmed,
					Notes:           ptr.Ptr(gofakeit.Sentence(6)),
				}

				if _, err := repo.Create(ctx, appt); err != nil {
					return fmt.Errorf("create appointment: %w", err)
				}
			}
		}
	}

	return nil
}

func seedBlog(ctx context.Context, repo *blogRepo.Repository, doctors []*domain.Staff) error {
	log.Println("seeding blog posts")

	categories := []domain.BlogCategory{
		domain.BlogNews,
		domain.BlogPolicy,
		domain.BlogEvent,
		domain.BlogAnnouncement,
	}

	for i := 0; i < 10; i++ {
		author := doctors[gofakeit.Number(0, len(doctors)-1)]
		now := time.Now().AddDate(0, 0, -gofakeit.Number(1, 60))
		post := &domain.BlogPost{
			Title:       gofakeit.Sentence(5),
			Content:     gofakeit.Paragraph(3, 4, 12, " "),
			Excerpt:     gofakeit.Sentence(10),
			AuthorID:    author.ID,
			Category:    categories[gofakeit.Number(0, len(categories)-1)],
			Tags:        types.StringArray{gofakeit.BuzzWord(), gofakeit.BuzzWord()},
			Status:      domain.BlogPublished,
			Priority:    domain.PriorityMedium,
			PublishedAt: &now,
		}

		if _, err := repo.Create(ctx, post); err != nil {
			return fmt.Errorf("create post: %w", err)
		}
	}

	return nil
}

func seedCalendar(ctx context.Context, repo *calendarRepo.Repository, doctors []*domain.Staff) error {
	log.Println("seeding calendar events")

	eventTypes := []domain.EventType{
		domain.EventMeeting,
		domain.EventTraining,
		domain.EventMaintenance,
		domain.EventGeneral,
	}

	for i := 0; i < 8; i++ {
		creator := doctors[gofakeit.Number(0, len(doctors)-1)]
		date := time.Now().AddDate(0, 0, gofakeit.Number(1, 30))
		startTime := types.TimeString(fmt.Sprintf("%02d:00", gofakeit.Number(9, 15)))
		endTime := types.TimeString(fmt.Sprintf("%02d:00", gofakeit.Number(16, 18)))

		event := &domain.CalendarEvent{
			Title:       gofakeit.Sentence(4),
			Description: ptr.Ptr(gofakeit.Sentence(10)),
			StartDate:   date,
			EndDate:     date,
			StartTime:   &startTime,
			EndTime:     &endTime,
			Type:        eventTypes[gofakeit.Number(0, len(eventTypes)-1)],
			Location:    ptr.Ptr(gofakeit.Street()),
			Attendees:   types.StringArray{creator.FullName()},
			CreatedBy:   creator.ID,
			Color:       domain.DefaultEventColor,
		}

		if _, err := repo.Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
	}

	return nil
}

func seedReminders(ctx context.Context, repo *reminderRepo.Repository, doctors []*domain.Staff) error {
	log.Println("seeding reminders")

	reminderTypes := []domain.ReminderType{
		domain.ReminderTask,
		domain.ReminderMaintenance,
		domain.ReminderMeeting,
		domain.ReminderDeadline,
	}
	priorities := []domain.Priority{
		domain.PriorityLow,
		domain.PriorityMedium,
		domain.PriorityHigh,
		domain.PriorityUrgent,
	}

	for i := 0; i < 12; i++ {
		creator := doctors[gofakeit.Number(0, len(doctors)-1)]
		assignee := doctors[gofakeit.Number(0, len(doctors)-1)]
		dueTime := types.TimeString(fmt.Sprintf("%02d:00", gofakeit.Number(9, 17)))

		rem := &domain.Reminder{
			Title:       gofakeit.Sentence(4),
			Description: ptr.Ptr(gofakeit.Sentence(8)),
			Type:        reminderTypes[gofakeit.Number(0, len(reminderTypes)-1)],
			Priority:    priorities[gofakeit.Number(0, len(priorities)-1)],
			DueDate:     time.Now().AddDate(0, 0, gofakeit.Number(1, 14)),
			DueTime:     &dueTime,
			AssignedTo:  &assignee.ID,
			CreatedBy:   creator.ID,
			Status:      domain.ReminderPending,
		}

		if _, err := repo.Create(ctx, rem); err != nil {
			return fmt.Errorf("create reminder: %w", err)
		}
	}

	return nil
}

func seedTutorials(ctx context.Context, repo *tutorialRepo.Repository, doctors []*domain.Staff) error {
	log.Println("seeding tutorials")

	categories := []domain.TutorialCategory{
		domain.TutorialProcedures,
		domain.TutorialSoftware,
		domain.TutorialEquipment,
		domain.TutorialPolicies,
	}
	difficulties := []domain.TutorialDifficulty{
		domain.DifficultyBeginner,
		domain.DifficultyIntermediate,
		domain.DifficultyAdvanced,
	}

	for i := 0; i < 6; i++ {
		author := doctors[gofakeit.Number(0, len(doctors)-1)]
		t := &domain.Tutorial{
			Title:         gofakeit.Sentence(5),
			Content:       gofakeit.Paragraph(2, 4, 10, " "),
			Category:      categories[gofakeit.Number(0, len(categories)-1)],
			Tags:          types.StringArray{gofakeit.BuzzWord()},
			AuthorID:      author.ID,
			Difficulty:    difficulties[gofakeit.Number(0, len(difficulties)-1)],
			EstimatedTime: gofakeit.Number(10, 60),
			Steps: types.StringArray{
				gofakeit.Sentence(6),
				gofakeit.Sentence(6),
				gofakeit.Sentence(6),
			},
			IsPublished: true,
		}

		if _, err := repo.Create(ctx, t); err != nil {
			return fmt.Errorf("create tutorial: %w", err)
		}
	}

	return nil
}
