package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
)

// gormAccountRepository implements AccountRepository on top of GORM.
type gormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates an AccountRepository backed by the given database.
func NewGormAccountRepository(db *gorm.DB) AccountRepository {
	return &gormAccountRepository{db: db}
}

func (r *gormAccountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (r *gormAccountRepository) FindByID(id string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

func (r *gormAccountRepository) FindAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("created_at").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

func (r *gormAccountRepository) FetchByUserID(userID string) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

func (r *gormAccountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (r *gormAccountRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Account{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// gormCategoryRepository implements CategoryRepository on top of GORM.
type gormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a CategoryRepository backed by the given database.
func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (r *gormCategoryRepository) FindByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("created_at").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

func (r *gormCategoryRepository) FindAllByUserID(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

func (r *gormCategoryRepository) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (r *gormCategoryRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// gormTransactionRepository implements TransactionRepository on top of GORM.
type gormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a TransactionRepository backed by the given database.
func NewGormTransactionRepository(db *gorm.DB) TransactionRepository {
	return &gormTransactionRepository{db: db}
}

func (r *gormTransactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (r *gormTransactionRepository) FindByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

func (r *gormTransactionRepository) FindAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func (r *gormTransactionRepository) FindByAccountID(accountID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("account_id = ?", accountID).Order("created_at").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func (r *gormTransactionRepository) FindByCategoryID(categoryID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("category_id = ?", categoryID).Order("created_at").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func (r *gormTransactionRepository) FindManyWithFilters(filter TransactionFilter) ([]models.Transaction, error) {
	q := r.db.Model(&models.Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.user_id = ?", filter.UserID)

	// Month/year filtering uses a half-open date range so it works the same
	// on postgres and the sqlite test driver.
	if from, to, ok := filterDateRange(filter); ok {
		q = q.Where("transactions.date >= ? AND transactions.date < ?", from, to)
	}
	if filter.Type != nil {
		q = q.Where("transactions.type = ?", *filter.Type)
	}
	if filter.CategoryID != nil {
		q = q.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.AccountID != nil {
		q = q.Where("transactions.account_id = ?", *filter.AccountID)
	}

	var transactions []models.Transaction
	if err := q.Order("transactions.created_at DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func (r *gormTransactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (r *gormTransactionRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Transaction{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// filterDateRange builds the [from, to) range for a filter's month/year. A
// month without a year is interpreted against the current year.
func filterDateRange(filter TransactionFilter) (time.Time, time.Time, bool) {
	if filter.Month == nil && filter.Year == nil {
		return time.Time{}, time.Time{}, false
	}

	year := time.Now().Year()
	if filter.Year != nil {
		year = *filter.Year
	}

	if filter.Month != nil {
		from := time.Date(year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, 0), true
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0), true
}

// gormUserRepository implements UserRepository on top of GORM.
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a UserRepository backed by the given database.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (r *gormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
