package service

import (
	"fmt"
	"log/slog"

	"github.com/akshay543210/propfirm143/internal/core"
)

const placeholderLogo = "/placeholder.svg"

// FirmService implements the admin firm operations. Creating a firm
// additionally enrolls it in the explore section; that second write is
// intentionally non-atomic and its failure surfaces as a warning on the
// result instead of rolling back the firm.
type FirmService struct {
	firms    core.FirmRepository
	sections core.SectionRepository
	logger   *slog.Logger
}

func NewFirmService(firms core.FirmRepository, sections core.SectionRepository, logger *slog.Logger) core.FirmService {
	return &FirmService{
		firms:    firms,
		sections: sections,
		logger:   logger,
	}
}

func (s *FirmService) AddFirm(input *core.FirmInput) core.Result {
	// Validation happens before any store call.
	if input.Name == "" || input.FundingAmount == "" {
		return core.Result{Success: false, Error: "Name and funding amount are required"}
	}

	slug := input.Slug
	if slug == "" {
		slug = DeriveSlug(input.Name)
	}

	logo := input.LogoURL
	if logo == "" {
		logo = placeholderLogo
	}

	firm := &core.PropFirm{
		Name:            input.Name,
		Slug:            slug,
		CategoryID:      input.CategoryID,
		Price:           input.Price,
		OriginalPrice:   input.OriginalPrice,
		CouponCode:      input.CouponCode,
		ProfitSplit:     input.ProfitSplit,
		PayoutRate:      input.PayoutRate,
		FundingAmount:   input.FundingAmount,
		MaxFunding:      input.MaxFunding,
		StartingFee:     input.StartingFee,
		ReviewScore:     input.ReviewScore,
		TrustRating:     input.TrustRating,
		UserReviewCount: input.UserReviewCount,
		Description:     input.Description,
		Features:        NormalizeList(input.Features),
		Pros:            NormalizeList(input.Pros),
		Cons:            NormalizeList(input.Cons),
		LogoURL:         logo,
		AffiliateURL:    input.AffiliateURL,
		Brand:           input.Brand,
		Platform:        input.Platform,
		EvaluationModel: input.EvaluationModel,
		Regulation:      input.Regulation,
		ShowOnHomepage:  input.ShowOnHomepage,
		TableOverrides:  tableOverrides(input),
	}

	if err := s.firms.Create(firm); err != nil {
		s.logger.Error("failed to create firm", "name", input.Name, "error", err)
		return core.Result{Success: false, Error: err.Error()}
	}

	result := core.Result{
		Success: true,
		Message: "Prop firm added successfully!",
		Data:    firm,
	}

	// Best-effort follow-up: new firms start out in the explore section.
	if err := s.sections.Insert(core.SectionExplore, firm.ID, 0); err != nil {
		s.logger.Warn("firm created but explore enrollment failed",
			"firm", firm.ID, "error", err)
		result.Warning = fmt.Sprintf("Firm %q was created but could not be added to the explore section: %v", firm.Name, err)
	}

	return result
}

func (s *FirmService) UpdateFirm(id string, input *core.FirmInput) core.Result {
	firm, err := s.firms.GetByID(id)
	if err != nil {
		return core.Result{Success: false, Error: fmt.Sprintf("firm not found: %v", err)}
	}

	nameChanged := input.Name != "" && input.Name != firm.Name
	if input.Name != "" {
		firm.Name = input.Name
	}
	switch {
	case input.Slug != "":
		firm.Slug = input.Slug
	case nameChanged:
		firm.Slug = DeriveSlug(firm.Name)
	}

	firm.CategoryID = input.CategoryID
	firm.Price = input.Price
	firm.OriginalPrice = input.OriginalPrice
	firm.CouponCode = input.CouponCode
	firm.ProfitSplit = input.ProfitSplit
	firm.PayoutRate = input.PayoutRate
	if input.FundingAmount != "" {
		firm.FundingAmount = input.FundingAmount
	}
	firm.MaxFunding = input.MaxFunding
	firm.StartingFee = input.StartingFee
	firm.ReviewScore = input.ReviewScore
	firm.TrustRating = input.TrustRating
	firm.UserReviewCount = input.UserReviewCount
	firm.Description = input.Description
	firm.Features = NormalizeList(input.Features)
	firm.Pros = NormalizeList(input.Pros)
	firm.Cons = NormalizeList(input.Cons)
	if input.LogoURL != "" {
		firm.LogoURL = input.LogoURL
	}
	firm.AffiliateURL = input.AffiliateURL
	firm.Brand = input.Brand
	firm.Platform = input.Platform
	firm.EvaluationModel = input.EvaluationModel
	firm.Regulation = input.Regulation
	firm.ShowOnHomepage = input.ShowOnHomepage
	firm.TableOverrides = tableOverrides(input)

	if err := s.firms.Update(firm); err != nil {
		s.logger.Error("failed to update firm", "firm", id, "error", err)
		return core.Result{Success: false, Error: err.Error()}
	}

	return core.Result{
		Success: true,
		Message: "Prop firm updated successfully!",
		Data:    firm,
	}
}

func (s *FirmService) DeleteFirm(id string) core.Result {
	if err := s.firms.Delete(id); err != nil {
		s.logger.Error("failed to delete firm", "firm", id, "error", err)
		return core.Result{Success: false, Error: err.Error()}
	}
	return core.Result{Success: true, Message: "Prop firm deleted successfully!"}
}

func tableOverrides(input *core.FirmInput) core.TableOverrides {
	return core.TableOverrides{
		Price:           input.TablePrice,
		ProfitSplit:     input.TableProfitSplit,
		PayoutRate:      input.TablePayoutRate,
		Platform:        input.TablePlatform,
		TrustRating:     input.TableTrustRating,
		EvaluationRules: input.TableEvaluationRules,
		Fee:             input.TableFee,
		CouponCode:      input.TableCouponCode,
	}
}
