package main

import (
	"log"
	"os"

	"connecthub/internal/database"
	"connecthub/internal/domain"
	"connecthub/internal/modules/auth"
	"connecthub/internal/pkg/jsonfield"
	"connecthub/internal/pkg/validator"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "connecthub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Listing{},
		&domain.Order{},
		&domain.Review{},
		&domain.Job{},
		&domain.SavedJob{},
		&domain.Message{},
		&domain.Plan{},
		&domain.Subscription{},
		&domain.GatewayPayment{},
		&domain.Payout{},
		auth.ResetCodeModel(),
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"password_reset_codes", "payouts", "gateway_payments", "subscriptions",
		"subscription_plans", "messages", "saved_jobs", "jobs", "reviews",
		"orders", "listings", "categories", "users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@connecthub.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
		Name:         "Console Admin",
		Phone:        "9000000000",
	}
	mustCreate(db.Create(&admin).Error, "admin")

	userHash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.DefaultCost)
	seedUsers := []domain.User{
		{Email: "buyer@connecthub.local", PasswordHash: string(userHash), Role: domain.RoleBuyer, Status: domain.UserActive, Name: "Bea Buyer", Phone: "9876543210"},
		{Email: "vendor@connecthub.local", PasswordHash: string(userHash), Role: domain.RoleVendor, Status: domain.UserActive, Name: "Vik Vendor", Phone: "9876543211"},
		{Email: "company@connecthub.local", PasswordHash: string(userHash), Role: domain.RoleCompany, Status: domain.UserActive, Name: "Acme Services", Phone: "9876543212"},
	}
	for i := range seedUsers {
		mustCreate(db.Create(&seedUsers[i]).Error, seedUsers[i].Email)
	}
	vendor := seedUsers[1]
	company := seedUsers[2]

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")

	categories := []domain.Category{
		{Name: "Plumbing", Slug: "plumbing", Type: domain.CategoryService, Featured: true, Active: true, SortOrder: 1, Icon: "wrench"},
		{Name: "Electrical", Slug: "electrical", Type: domain.CategoryService, Active: true, SortOrder: 2, Icon: "bolt"},
		{Name: "Cleaning", Slug: "cleaning", Type: domain.CategoryService, Active: true, SortOrder: 3, Icon: "broom"},
		{Name: "Tools", Slug: "tools", Type: domain.CategoryProduct, Active: true, SortOrder: 4, Icon: "hammer"},
		{Name: "Landscaping", Slug: "landscaping", Type: domain.CategoryService, Active: false, SortOrder: 5, Icon: "tree"},
	}
	for i := range categories {
		mustCreate(validator.Check(&categories[i]), categories[i].Slug)
		mustCreate(db.Create(&categories[i]).Error, categories[i].Slug)
	}

	// ================== LISTINGS ==================
	log.Println("Creating listings...")

	listings := []domain.Listing{
		{
			VendorID: vendor.ID, CategoryID: categories[0].ID, Kind: domain.CategoryService,
			Title: "Emergency pipe repair", Description: "24/7 call-out for burst pipes and leaks",
			Price: 1200, Images: jsonfield.Encode([]string{"/static/services/pipe1.jpg"}),
			Tags: jsonfield.Encode([]string{"emergency", "plumbing"}), City: "Astana", Active: true,
		},
		{
			VendorID: vendor.ID, CategoryID: categories[3].ID, Kind: domain.CategoryProduct,
			Title: "Cordless drill", Description: "18V drill with two batteries",
			Price: 350, Images: jsonfield.Encode([]string{"/static/products/drill.jpg"}),
			Tags: jsonfield.Encode([]string{"tools"}), Active: true,
		},
	}
	for i := range listings {
		mustCreate(validator.Check(&listings[i]), listings[i].Title)
		mustCreate(db.Create(&listings[i]).Error, listings[i].Title)
	}

	// ================== JOBS ==================
	log.Println("Creating jobs...")

	job := domain.Job{
		CompanyID: company.ID, Title: "Senior plumber", Description: "Full-time role, residential projects",
		Type: "FULL_TIME", ExperienceMin: 3, ExperienceMax: 7,
		SalaryMin: 250000, SalaryMax: 400000, SalaryPeriod: domain.SalaryMonthly,
		Location: "Astana", Remote: false,
		Skills: jsonfield.Encode([]string{"pipes", "welding", "diagnostics"}),
		Status: domain.JobActive,
	}
	mustCreate(db.Create(&job).Error, job.Title)

	// ================== PLANS ==================
	log.Println("Creating subscription plans...")

	plans := []domain.Plan{
		{ID: domain.PlanFree, Name: "Free", Description: "Get started", Price: 0, MaxListings: 3, MaxImages: 2, MaxTeamMembers: 1, IsActive: true},
		{ID: domain.PlanStarter, Name: "Starter", Description: "For growing vendors", Price: 499, MaxListings: 10, MaxImages: 5, MaxTeamMembers: 3, IsActive: true},
		{ID: domain.PlanProfessional, Name: "Professional", Description: "Advanced analytics and priority placement", Price: 1499, MaxListings: -1, MaxImages: 5, MaxTeamMembers: 10, AnalyticsAdvanced: true, PrioritySearch: true, IsActive: true},
		{ID: domain.PlanEnterprise, Name: "Enterprise", Description: "Everything plus priority support", Price: 4999, MaxListings: -1, MaxImages: 5, MaxTeamMembers: -1, AnalyticsAdvanced: true, PrioritySearch: true, PrioritySupport: true, IsActive: true},
	}
	for i := range plans {
		mustCreate(db.Create(&plans[i]).Error, string(plans[i].ID))
	}

	sub := domain.Subscription{
		ID: uuid.NewString(), VendorID: vendor.ID, PlanID: domain.PlanFree,
		Status: domain.SubscriptionActive, AutoRenew: false,
	}
	mustCreate(db.Create(&sub).Error, "subscription")

	// ================== MESSAGES ==================
	log.Println("Creating messages...")

	messages := []domain.Message{
		{Name: "Dana", Email: "dana@example.com", Subject: "Vendor verification", Body: "How long does verification take?", Priority: domain.PriorityNormal, Status: domain.MessageUnread},
		{Name: "Olzhas", Email: "olzhas@example.com", Subject: "Refund request", Body: "Order ORD-17 was cancelled but not refunded", Priority: domain.PriorityHigh, Status: domain.MessageUnread},
	}
	for i := range messages {
		mustCreate(db.Create(&messages[i]).Error, messages[i].Subject)
	}

	log.Println("Seed completed.")
	log.Println("Admin login: admin@connecthub.local / Admin123!")
}

func mustCreate(err error, what string) {
	if err != nil {
		log.Fatalf("seed %s failed: %v", what, err)
	}
}
