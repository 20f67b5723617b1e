package controllers

import (
	"context"
	"time"

	"BabyNest/aggregation"
	"BabyNest/models"
	"BabyNest/repositories"
	"BabyNest/services"
)

// The controllers depend on these narrow views of the services so handlers
// can be tested against mocks.

type AuthUseCase interface {
	Signup(ctx context.Context, in services.SignupInput) (services.SignupResult, error)
	VerifyOTP(ctx context.Context, in services.VerifyOTPInput) (string, error)
	ResendOTP(ctx context.Context, email string, otpType models.OTPType, role models.OwnerRole) error
	Login(ctx context.Context, email, password string, role models.OwnerRole) (services.LoginResult, error)
	GoogleLogin(ctx context.Context, idToken string) (services.LoginResult, error)
	ForgotPassword(ctx context.Context, email string, role models.OwnerRole) error
	ChangePassword(ctx context.Context, email, password string, role models.OwnerRole) error
}

type ParentUseCase interface {
	ReadParent(ctx context.Context, parentID string) (models.Parent, error)
	UpdateParent(ctx context.Context, parentID string, in services.ParentUpdate) (models.Parent, error)
	RegisterDevice(ctx context.Context, owner models.Owner, token string) error
}

type ChildUseCase interface {
	Create(ctx context.Context, parentID string, in services.ChildInput) (models.Child, error)
	List(ctx context.Context, parentID string) ([]models.Child, error)
	Authorize(ctx context.Context, caller models.Owner, parentID, childID string) (models.Child, error)
	Detail(ctx context.Context, child models.Child) (services.ChildDetail, error)
	Update(ctx context.Context, child models.Child, in services.ChildUpdate) (models.Child, error)
	Delete(ctx context.Context, child models.Child) error
	TipOfTheDay(ctx context.Context, child models.Child) (string, error)
}

type GrowthUseCase interface {
	List(ctx context.Context, child models.Child) ([]services.GrowthView, error)
	Add(ctx context.Context, child models.Child, weight, height float64, date time.Time) (models.GrowthEntry, error)
}

type ActivityUseCase interface {
	StartSleep(ctx context.Context, caller models.Owner, child models.Child, sleepType models.SleepType, sleepTime time.Time) (models.BabySleep, error)
	EndSleep(ctx context.Context, child models.Child, sleepID string, awakeTime time.Time) (services.EndSleepResult, error)
	ListSleeps(ctx context.Context, child models.Child, date *time.Time) (services.SleepList, error)
	AddTemperature(ctx context.Context, caller models.Owner, child models.Child, temperature float64, date *time.Time) (models.TemperatureReading, error)
	ListTemperatures(ctx context.Context, child models.Child, date *time.Time) ([]models.TemperatureReading, error)
	Latest(ctx context.Context, child models.Child) (services.LatestActivities, error)
}

type FeedUseCase interface {
	CreateSchedule(ctx context.Context, parentID string, child models.Child, in services.ScheduleInput) (models.FeedSchedule, error)
	ListSchedules(ctx context.Context, child models.Child, title string) ([]models.FeedSchedule, error)
	GetSchedule(ctx context.Context, child models.Child, scheduleID string) (models.FeedSchedule, error)
	SwitchSchedule(ctx context.Context, child models.Child, scheduleID string) (models.FeedSchedule, error)
	DeleteSchedule(ctx context.Context, child models.Child, scheduleID string) error
	LogFeed(ctx context.Context, caller models.Owner, child models.Child, slotID string, actualTime time.Time) (models.Activity, error)
	Progress(ctx context.Context, child models.Child, scheduleID string) (aggregation.FeedProgress, error)
}

type DashboardUseCase interface {
	Build(ctx context.Context, child models.Child) (aggregation.Dashboard, error)
}

type MilestoneUseCase interface {
	ListForChild(ctx context.Context, child models.Child) ([]aggregation.MilestoneView, error)
	SetProgress(ctx context.Context, child models.Child, subMilestoneID string, achieved bool, note *string) (models.ChildMilestoneProgress, error)
	Create(ctx context.Context, title string, month int, subs []services.SubMilestoneInput) (models.Milestone, error)
	Update(ctx context.Context, milestoneID string, in services.MilestoneUpdate) (models.Milestone, error)
	Delete(ctx context.Context, milestoneID string) error
	AddSub(ctx context.Context, milestoneID string, in services.SubMilestoneInput) (models.SubMilestone, error)
	UpdateSub(ctx context.Context, subMilestoneID string, in services.SubMilestoneUpdate) (models.SubMilestone, error)
	DeleteSub(ctx context.Context, subMilestoneID string) error
}

type VaccinationUseCase interface {
	ListForChild(ctx context.Context, child models.Child) ([]aggregation.VaccinationView, error)
	Update(ctx context.Context, child models.Child, vaccinationID string, in services.VaccinationUpdate) (models.VaccinationProgress, error)
	Create(ctx context.Context, name, description string, month models.VaccinationMonth) (models.Vaccination, error)
	Edit(ctx context.Context, vaccinationID string, in services.VaccinationEdit) (models.Vaccination, error)
	Delete(ctx context.Context, vaccinationID string) error
}

type RelationUseCase interface {
	Create(ctx context.Context, parentID string, child models.Child, in services.RelationInput) (models.ChildRelation, error)
	List(ctx context.Context, child models.Child) ([]models.ChildRelation, error)
	Remove(ctx context.Context, child models.Child, relationID string) error
	Leave(ctx context.Context, caller models.Owner, relativeID string) error
}

type CategoryUseCase interface {
	Create(ctx context.Context, adminID string, in services.CategoryInput) (models.Category, error)
	List(ctx context.Context, kind models.CategoryKind) ([]services.CategoryView, error)
	Update(ctx context.Context, categoryID string, in services.CategoryInput) (models.Category, error)
	Delete(ctx context.Context, categoryID string) error
	CreateSub(ctx context.Context, categoryID, name, slug string) (models.SubCategory, error)
	DeleteSub(ctx context.Context, subCategoryID string) error
}

type ProductUseCase interface {
	Create(ctx context.Context, supplierID string, in services.ProductInput) (models.Product, error)
	List(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, productID string) (models.Product, error)
}

type MusicUseCase interface {
	Create(ctx context.Context, artistID string, in services.MusicInput) (models.Music, error)
	List(ctx context.Context, categoryID string) ([]models.Music, error)
}

type CartUseCase interface {
	Get(ctx context.Context, owner models.Owner) (services.CartView, error)
	Add(ctx context.Context, owner models.Owner, productID string, quantity int) (models.CartItem, string, error)
	Reduce(ctx context.Context, owner models.Owner, itemID string, reduceBy int) (*models.CartItem, error)
	Remove(ctx context.Context, owner models.Owner, itemID string) error
}

type OrderUseCase interface {
	Create(ctx context.Context, owner models.Owner, in services.OrderInput) (models.Order, error)
	ListForOwner(ctx context.Context, owner models.Owner) ([]models.Order, error)
	List(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error)
}

type FavoriteUseCase interface {
	ToggleProduct(ctx context.Context, owner models.Owner, productID string) (*models.ProductFavorite, bool, error)
	ListProducts(ctx context.Context, owner models.Owner) ([]models.ProductFavorite, error)
	ToggleMusic(ctx context.Context, owner models.Owner, musicID string) (*models.MusicFavorite, bool, error)
	ListMusic(ctx context.Context, owner models.Owner) ([]models.MusicFavorite, error)
}

type PurchaseUseCase interface {
	PurchaseMusic(ctx context.Context, owner models.Owner, musicID string) (models.PurchasedMusic, error)
	List(ctx context.Context, owner models.Owner) ([]models.PurchasedMusic, error)
}

type MessageUseCase interface {
	List(ctx context.Context, owner models.Owner) ([]models.Message, error)
}

type ChatUseCase interface {
	Create(ctx context.Context, creatorID, title string, participants []string) (models.Chat, error)
	List(ctx context.Context, memberID string) ([]models.Chat, error)
	Authorize(ctx context.Context, chatID, memberID string) (models.Chat, error)
	SendMessage(ctx context.Context, senderID, chatID string, in services.ChatMessageInput) (models.ChatMessage, error)
	ListMessages(ctx context.Context, memberID, chatID string) ([]models.ChatMessage, error)
}

type InvitationUseCase interface {
	Invite(ctx context.Context, parentID, toEmail string) error
	Accept(ctx context.Context, in services.AcceptInvitationInput) (models.Parent, error)
}

type SupportUseCase interface {
	Create(ctx context.Context, parentID string, in services.QueryInput) (models.SupportQuery, error)
	ListForParent(ctx context.Context, parentID string) ([]models.SupportQuery, error)
	List(ctx context.Context, search string) ([]models.SupportQuery, error)
	Get(ctx context.Context, queryID string) (models.SupportQuery, error)
	Update(ctx context.Context, queryID string, in services.QueryUpdate) (models.SupportQuery, error)
	Delete(ctx context.Context, queryID string) error
}

type UploadUseCase interface {
	UploadDataURL(ctx context.Context, dataURL string) (services.StoredFile, error)
}

type AdminUseCase interface {
	Dashboard(ctx context.Context) (services.AdminDashboard, error)
	ExportOrders(ctx context.Context, status models.OrderStatus) ([]byte, error)
	SupplierDashboard(ctx context.Context, supplierID string) (services.SupplierDashboard, error)
	ArtistDashboard(ctx context.Context, artistID string) (services.ArtistDashboard, error)

	CreateSupplier(ctx context.Context, in services.VendorInput) (models.Supplier, error)
	ListSuppliers(ctx context.Context, search string) ([]models.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, in services.VendorUpdate) (models.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
	CreateArtist(ctx context.Context, in services.VendorInput) (models.Artist, error)
	ListArtists(ctx context.Context, search string) ([]models.Artist, error)
	UpdateArtist(ctx context.Context, artistID string, in services.VendorUpdate) (models.Artist, error)
	DeleteArtist(ctx context.Context, artistID string) error
}
