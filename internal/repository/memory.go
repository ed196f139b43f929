package repository

import (
	"sort"
	"sync"
	"time"

	"moneta/internal/models"
	"moneta/internal/uuid"
)

// The in-memory repositories keep entities in insertion-ordered slices
// guarded by a mutex. They stamp IDs and timestamps the way the GORM layer
// would, and always hand out copies so no entity is shared by reference
// between use-case invocations.

// MemoryAccountRepository is an in-memory AccountRepository.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts []models.Account
}

// NewMemoryAccountRepository creates an empty in-memory account store.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{}
}

func (r *MemoryAccountRepository) Create(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stampBase(&account.Base)
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *MemoryAccountRepository) FindByID(id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, nil
}

func (r *MemoryAccountRepository) FindAll() ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *MemoryAccountRepository) FetchByUserID(userID string) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Account{}
	for _, account := range r.accounts {
		if account.UserID == userID {
			out = append(out, account)
		}
	}
	return out, nil
}

func (r *MemoryAccountRepository) Update(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.UpdatedAt = time.Now()
	for i := range r.accounts {
		if r.accounts[i].ID == account.ID {
			r.accounts[i] = *account
			return nil
		}
	}
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *MemoryAccountRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryCategoryRepository is an in-memory CategoryRepository.
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
}

// NewMemoryCategoryRepository creates an empty in-memory category store.
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{}
}

func (r *MemoryCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stampBase(&category.Base)
	r.categories = append(r.categories, *category)
	return nil
}

func (r *MemoryCategoryRepository) FindByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			category := r.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (r *MemoryCategoryRepository) FindAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *MemoryCategoryRepository) FindAllByUserID(userID string) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Category{}
	for _, category := range r.categories {
		if category.UserID == userID {
			out = append(out, category)
		}
	}
	return out, nil
}

func (r *MemoryCategoryRepository) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.UpdatedAt = time.Now()
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	r.categories = append(r.categories, *category)
	return nil
}

func (r *MemoryCategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryTransactionRepository is an in-memory TransactionRepository. It
// holds a reference to the account store so filtered queries can join
// through the owning account's user, like the SQL implementation does.
type MemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	accounts     *MemoryAccountRepository
}

// NewMemoryTransactionRepository creates an empty in-memory transaction store
// joined against the given account store.
func NewMemoryTransactionRepository(accounts *MemoryAccountRepository) *MemoryTransactionRepository {
	return &MemoryTransactionRepository{accounts: accounts}
}

func (r *MemoryTransactionRepository) Create(transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stampBase(&transaction.Base)
	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *MemoryTransactionRepository) FindByID(id string) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			transaction := r.transactions[i]
			return &transaction, nil
		}
	}
	return nil, nil
}

func (r *MemoryTransactionRepository) FindAll() ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	sortByCreatedAtDesc(out)
	return out, nil
}

func (r *MemoryTransactionRepository) FindByAccountID(accountID string) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Transaction{}
	for _, transaction := range r.transactions {
		if transaction.AccountID == accountID {
			out = append(out, transaction)
		}
	}
	return out, nil
}

func (r *MemoryTransactionRepository) FindByCategoryID(categoryID string) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Transaction{}
	for _, transaction := range r.transactions {
		if transaction.CategoryID == categoryID {
			out = append(out, transaction)
		}
	}
	return out, nil
}

func (r *MemoryTransactionRepository) FindManyWithFilters(filter TransactionFilter) ([]models.Transaction, error) {
	accounts, err := r.accounts.FetchByUserID(filter.UserID)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(accounts))
	for _, account := range accounts {
		owned[account.ID] = true
	}

	from, to, hasRange := filterDateRange(filter)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Transaction{}
	for _, transaction := range r.transactions {
		if !owned[transaction.AccountID] {
			continue
		}
		if hasRange && (transaction.Date.Before(from) || !transaction.Date.Before(to)) {
			continue
		}
		if filter.Type != nil && transaction.Type != *filter.Type {
			continue
		}
		if filter.CategoryID != nil && transaction.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.AccountID != nil && transaction.AccountID != *filter.AccountID {
			continue
		}
		out = append(out, transaction)
	}
	sortByCreatedAtDesc(out)
	return out, nil
}

func (r *MemoryTransactionRepository) Update(transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	transaction.UpdatedAt = time.Now()
	for i := range r.transactions {
		if r.transactions[i].ID == transaction.ID {
			r.transactions[i] = *transaction
			return nil
		}
	}
	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *MemoryTransactionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryUserRepository is an in-memory UserRepository.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewMemoryUserRepository creates an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stampBase(&user.Base)
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

// stampBase fills in the ID and timestamps the way the GORM layer would on
// insert, keeping caller-supplied values intact.
func stampBase(b *models.Base) {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
}

func sortByCreatedAtDesc(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
}
