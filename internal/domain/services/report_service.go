package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/infrastructure/config"
)

// InterfaceReportService defines the export report service interface
type InterfaceReportService interface {
	ExportShops() (*bytes.Buffer, string, error)
	ExportBindings() (*bytes.Buffer, string, error)
}

// ReportService builds spreadsheet exports of the console data
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
	}
}

// 1 ExportShops exports all shops with their classification and status to an
// xlsx workbook. Returns the workbook buffer and a dated filename.
func (s *ReportService) ExportShops() (*bytes.Buffer, string, error) {
	var shops []models.Shop
	if err := s.DB.Preload("Types").Preload("Cuisines").Order("id").Find(&shops).Error; err != nil {
		return nil, "", err
	}

	xl := excelize.NewFile()
	defer xl.Close()

	sheet := "Shops"
	xl.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Phone", "Address", "Status", "Types", "Cuisines", "Price Range", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xl.SetCellValue(sheet, cell, h)
	}

	for i, shop := range shops {
		row := i + 2
		xl.SetCellValue(sheet, "A"+strconv.Itoa(row), shop.ID)
		xl.SetCellValue(sheet, "B"+strconv.Itoa(row), shop.Name)
		xl.SetCellValue(sheet, "C"+strconv.Itoa(row), shop.PhoneNumber)
		xl.SetCellValue(sheet, "D"+strconv.Itoa(row), shop.Address)
		xl.SetCellValue(sheet, "E"+strconv.Itoa(row), string(shop.Status))
		xl.SetCellValue(sheet, "F"+strconv.Itoa(row), joinTypeNames(shop.Types))
		xl.SetCellValue(sheet, "G"+strconv.Itoa(row), joinCuisineNames(shop.Cuisines))
		xl.SetCellValue(sheet, "H"+strconv.Itoa(row), shop.PriceRange)
		xl.SetCellValue(sheet, "I"+strconv.Itoa(row), shop.CreatedAt.Format("2006-01-02 15:04"))
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build shop report: %w", err)
	}

	filename := fmt.Sprintf("shops_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// 2 ExportBindings exports every device binding with shop and device detail
func (s *ReportService) ExportBindings() (*bytes.Buffer, string, error) {
	var bindings []models.ShopDeviceBinding
	if err := s.DB.Preload("Shop").Preload("Device").Order("id").Find(&bindings).Error; err != nil {
		return nil, "", err
	}

	xl := excelize.NewFile()
	defer xl.Close()

	sheet := "Bindings"
	xl.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Shop", "Device Label", "Serial Number", "Device Type", "Status", "CCDC", "Bound At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xl.SetCellValue(sheet, cell, h)
	}

	for i, b := range bindings {
		row := i + 2
		xl.SetCellValue(sheet, "A"+strconv.Itoa(row), b.ID)
		if b.Shop != nil {
			xl.SetCellValue(sheet, "B"+strconv.Itoa(row), b.Shop.Name)
		}
		if b.Device != nil {
			xl.SetCellValue(sheet, "C"+strconv.Itoa(row), b.Device.DeviceID)
			xl.SetCellValue(sheet, "D"+strconv.Itoa(row), b.Device.SerialNumber)
			xl.SetCellValue(sheet, "F"+strconv.Itoa(row), string(b.Device.Status))
		}
		xl.SetCellValue(sheet, "E"+strconv.Itoa(row), b.DeviceType)
		xl.SetCellValue(sheet, "G"+strconv.Itoa(row), b.CCDC)
		xl.SetCellValue(sheet, "H"+strconv.Itoa(row), b.CreatedAt.Format("2006-01-02 15:04"))
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build binding report: %w", err)
	}

	filename := fmt.Sprintf("device_bindings_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

func joinTypeNames(types []models.StoreType) string {
	names := ""
	for i, t := range types {
		if i > 0 {
			names += ", "
		}
		names += t.Name
	}
	return names
}

func joinCuisineNames(cuisines []models.Cuisine) string {
	names := ""
	for i, c := range cuisines {
		if i > 0 {
			names += ", "
		}
		names += c.Name
	}
	return names
}
