package repository

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/hirelab/interview-trainer/internal/model"
)

type JobMarketRepository interface {
	FindAll() ([]model.JobMarketEntry, error)
	SeedIfEmpty() error
}

type jobMarketRepository struct {
	db *gorm.DB
}

func NewJobMarketRepository(db *gorm.DB) JobMarketRepository {
	return &jobMarketRepository{db: db}
}

func (r *jobMarketRepository) FindAll() ([]model.JobMarketEntry, error) {
	var entries []model.JobMarketEntry
	err := r.db.Order("job_title ASC").Find(&entries).Error
	return entries, err
}

// SeedIfEmpty inserts the ten reference rows on first initialization. The
// table is read-only afterwards.
func (r *jobMarketRepository) SeedIfEmpty() error {
	var count int64
	if err := r.db.Model(&model.JobMarketEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Info().Msg("Seeding job market reference data")
	return r.db.Create(&jobMarketSeed).Error
}

var jobMarketSeed = []model.JobMarketEntry{
	{JobTitle: "Software Engineer", Category: "Technology", AvgSalaryMin: 12000000, AvgSalaryMax: 25000000, DemandLevel: "High",
		RequiredSkills: "Python,Java,JavaScript,SQL,Git", Description: "Builds and maintains software applications"},
	{JobTitle: "Data Scientist", Category: "Technology", AvgSalaryMin: 15000000, AvgSalaryMax: 30000000, DemandLevel: "Very High",
		RequiredSkills: "Python,R,SQL,Machine Learning,Statistics", Description: "Data analysis and machine learning"},
	{JobTitle: "Product Manager", Category: "Management", AvgSalaryMin: 15000000, AvgSalaryMax: 35000000, DemandLevel: "High",
		RequiredSkills: "Product Strategy,Agile,Communication,Analytics", Description: "Owns the product lifecycle"},
	{JobTitle: "UX Designer", Category: "Creative", AvgSalaryMin: 10000000, AvgSalaryMax: 20000000, DemandLevel: "Medium",
		RequiredSkills: "Figma,Adobe XD,User Research,Prototyping", Description: "User experience design"},
	{JobTitle: "Digital Marketing", Category: "Marketing", AvgSalaryMin: 8000000, AvgSalaryMax: 18000000, DemandLevel: "High",
		RequiredSkills: "SEO,SEM,Social Media,Content Marketing,Analytics", Description: "Digital marketing strategy"},
	{JobTitle: "Business Analyst", Category: "Operations", AvgSalaryMin: 10000000, AvgSalaryMax: 22000000, DemandLevel: "High",
		RequiredSkills: "SQL,Excel,Data Analysis,Business Intelligence", Description: "Business and requirements analysis"},
	{JobTitle: "DevOps Engineer", Category: "Technology", AvgSalaryMin: 14000000, AvgSalaryMax: 28000000, DemandLevel: "Very High",
		RequiredSkills: "Docker,Kubernetes,AWS,CI/CD,Linux", Description: "Automation and infrastructure"},
	{JobTitle: "HR Manager", Category: "HR", AvgSalaryMin: 12000000, AvgSalaryMax: 25000000, DemandLevel: "Medium",
		RequiredSkills: "Recruitment,Employee Relations,HRIS,Labor Law", Description: "Human resources management"},
	{JobTitle: "Sales Manager", Category: "Sales", AvgSalaryMin: 10000000, AvgSalaryMax: 30000000, DemandLevel: "High",
		RequiredSkills: "Negotiation,CRM,Sales Strategy,Communication", Description: "Sales team management"},
	{JobTitle: "Financial Analyst", Category: "Finance", AvgSalaryMin: 10000000, AvgSalaryMax: 22000000, DemandLevel: "Medium",
		RequiredSkills: "Financial Modeling,Excel,Accounting,Analysis", Description: "Corporate financial analysis"},
}
