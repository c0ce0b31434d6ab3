package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
)

type Repos struct {
	User        repos.UserRepo
	UserToken   repos.UserTokenRepo
	Category    repos.CategoryRepo
	Product     repos.ProductRepo
	Template    repos.TemplateRepo
	Accessory   repos.AccessoryRepo
	News        repos.NewsRepo
	Review      repos.ReviewRepo
	Cart        repos.CartRepo
	Order       repos.OrderRepo
	Voucher     repos.VoucherRepo
	SavedDesign repos.SavedDesignRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:        repos.NewUserRepo(db, log),
		UserToken:   repos.NewUserTokenRepo(db, log),
		Category:    repos.NewCategoryRepo(db, log),
		Product:     repos.NewProductRepo(db, log),
		Template:    repos.NewTemplateRepo(db, log),
		Accessory:   repos.NewAccessoryRepo(db, log),
		News:        repos.NewNewsRepo(db, log),
		Review:      repos.NewReviewRepo(db, log),
		Cart:        repos.NewCartRepo(db, log),
		Order:       repos.NewOrderRepo(db, log),
		Voucher:     repos.NewVoucherRepo(db, log),
		SavedDesign: repos.NewSavedDesignRepo(db, log),
	}
}
