// Package wire provides dependency injection for the pmide application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/riverphoenix/ai-pm-ide/internal/adapters/sqlite"
	"github.com/riverphoenix/ai-pm-ide/internal/app"
	"github.com/riverphoenix/ai-pm-ide/internal/db"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
)

var (
	categoryService     primary.CategoryService
	frameworkService    primary.FrameworkService
	promptService       primary.PromptService
	folderService       primary.FolderService
	itemService         primary.ItemService
	settingsService     primary.SettingsService
	documentService     primary.DocumentService
	outputService       primary.OutputService
	projectService      primary.ProjectService
	conversationService primary.ConversationService
	usageService        primary.UsageService
	once                sync.Once
)

// CategoryService returns the singleton CategoryService instance.
func CategoryService() primary.CategoryService {
	once.Do(initServices)
	return categoryService
}

// FrameworkService returns the singleton FrameworkService instance.
func FrameworkService() primary.FrameworkService {
	once.Do(initServices)
	return frameworkService
}

// PromptService returns the singleton PromptService instance.
func PromptService() primary.PromptService {
	once.Do(initServices)
	return promptService
}

// FolderService returns the singleton FolderService instance.
func FolderService() primary.FolderService {
	once.Do(initServices)
	return folderService
}

// ItemService returns the singleton ItemService instance.
func ItemService() primary.ItemService {
	once.Do(initServices)
	return itemService
}

// SettingsService returns the singleton SettingsService instance.
func SettingsService() primary.SettingsService {
	once.Do(initServices)
	return settingsService
}

// DocumentService returns the singleton DocumentService instance.
func DocumentService() primary.DocumentService {
	once.Do(initServices)
	return documentService
}

// OutputService returns the singleton OutputService instance.
func OutputService() primary.OutputService {
	once.Do(initServices)
	return outputService
}

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// ConversationService returns the singleton ConversationService instance.
func ConversationService() primary.ConversationService {
	once.Do(initServices)
	return conversationService
}

// UsageService returns the singleton UsageService instance.
func UsageService() primary.UsageService {
	once.Do(initServices)
	return usageService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Get database connection (schema init and catalog seeding happen here)
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	categoryRepo := sqlite.NewCategoryRepository(database)
	frameworkRepo := sqlite.NewFrameworkRepository(database)
	promptRepo := sqlite.NewPromptRepository(database)
	folderRepo := sqlite.NewFolderRepository(database)
	itemRepo := sqlite.NewItemRepository(database)
	settingsRepo := sqlite.NewSettingsRepository(database)
	documentRepo := sqlite.NewContextDocumentRepository(database)
	outputRepo := sqlite.NewFrameworkOutputRepository(database)
	projectRepo := sqlite.NewProjectRepository(database)
	conversationRepo := sqlite.NewConversationRepository(database)
	messageRepo := sqlite.NewMessageRepository(database)
	usageRepo := sqlite.NewTokenUsageRepository(database)

	// Create services (primary ports implementation)
	categoryService = app.NewCategoryService(categoryRepo)
	frameworkService = app.NewFrameworkService(frameworkRepo, categoryRepo)
	promptService = app.NewPromptService(promptRepo, frameworkRepo)
	folderService = app.NewFolderService(folderRepo, itemRepo)
	itemService = app.NewItemService(itemRepo)
	settingsService = app.NewSettingsService(settingsRepo)
	documentService = app.NewDocumentService(documentRepo)
	outputService = app.NewOutputService(outputRepo, frameworkRepo)
	projectService = app.NewProjectService(projectRepo)
	conversationService = app.NewConversationService(conversationRepo, messageRepo)
	usageService = app.NewUsageService(usageRepo)
}
