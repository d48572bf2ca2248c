package service

import (
	"log/slog"
	"strings"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/efreitasn/auctionhouse/internal/store"
)

const maxNameLength = 64

// RegisterBuyerRequest represents the input for buyer registration.
type RegisterBuyerRequest struct {
	Name         string
	Address      string
	BankAccount  string
	BankAuthCode string
}

// RegisterSellerRequest represents the input for seller registration.
type RegisterSellerRequest struct {
	Name        string
	Address     string
	BankAccount string
}

// DirectoryService handles registration of buyers and sellers.
type DirectoryService struct {
	buyers  *store.BuyerStore
	sellers *store.SellerStore
	logger  *slog.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(buyers *store.BuyerStore, sellers *store.SellerStore, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		buyers:  buyers,
		sellers: sellers,
		logger:  logger,
	}
}

// RegisterBuyer validates the request and adds the buyer to the directory.
func (s *DirectoryService) RegisterBuyer(req RegisterBuyerRequest) (*domain.Buyer, error) {
	s.logger.Debug("message in", slog.String("op", "registerBuyer"), slog.String("name", req.Name))

	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := required("address", req.Address); err != nil {
		return nil, err
	}
	if err := required("bank_account", req.BankAccount); err != nil {
		return nil, err
	}
	if err := required("bank_auth_code", req.BankAuthCode); err != nil {
		return nil, err
	}

	buyer := domain.NewBuyer(req.Name, req.Address, req.BankAccount, req.BankAuthCode)
	if err := s.buyers.Create(buyer); err != nil {
		return nil, err
	}

	s.logger.Info("buyer registered", slog.String("name", req.Name))
	return buyer, nil
}

// RegisterSeller validates the request and adds the seller to the directory.
func (s *DirectoryService) RegisterSeller(req RegisterSellerRequest) (*domain.Seller, error) {
	s.logger.Debug("message in", slog.String("op", "registerSeller"), slog.String("name", req.Name))

	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := required("address", req.Address); err != nil {
		return nil, err
	}
	if err := required("bank_account", req.BankAccount); err != nil {
		return nil, err
	}

	seller := &domain.Seller{
		Name:        req.Name,
		Address:     req.Address,
		BankAccount: req.BankAccount,
	}
	if err := s.sellers.Create(seller); err != nil {
		return nil, err
	}

	s.logger.Info("seller registered", slog.String("name", req.Name))
	return seller, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Message: "name is required"}
	}
	if len(name) > maxNameLength {
		return &domain.ValidationError{Message: "name must be at most 64 characters"}
	}
	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &domain.ValidationError{Message: field + " is required"}
	}
	return nil
}
