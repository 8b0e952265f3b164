package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
)

// Topic представляет тему учебной программы KCNA
type Topic struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Subtopics   []string `json:"subtopics"`
}

// Resource представляет ссылку на учебный материал
type Resource struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// LearningResourceTree - статичное дерево тем и материалов
type LearningResourceTree struct {
	Topics    []Topic    `json:"topics"`
	Resources []Resource `json:"resources"`
}

// MarkdownDocument представляет markdown-файл учебных материалов
type MarkdownDocument struct {
	Content     string `json:"content"`
	Format      string `json:"format"`
	LastUpdated string `json:"last_updated"`
}

// ResourceService отдает учебные материалы: статичное дерево тем,
// файловый JSON-каталог внешних источников и markdown-версию каталога
type ResourceService struct {
	dir string
}

// NewResourceService создает новый сервис учебных материалов
func NewResourceService(dir string) *ResourceService {
	return &ResourceService{dir: dir}
}

// LearningResources возвращает статичное дерево тем и материалов KCNA
func (s *ResourceService) LearningResources() *LearningResourceTree {
	return &learningResourceTree
}

// ExternalSources возвращает каталог внешних источников обучения из
// learning_sources.json. Если файла нет, отдается встроенный fallback;
// прочие ошибки чтения или некорректный JSON поднимаются наверх.
func (s *ResourceService) ExternalSources() (json.RawMessage, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, "learning_sources.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return externalSourcesFallback, nil
		}
		return nil, fmt.Errorf("failed to read learning sources: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("learning sources file contains invalid JSON")
	}
	return json.RawMessage(data), nil
}

// MarkdownContent возвращает markdown-версию каталога.
// Возвращает ErrNotFound, если файл отсутствует.
func (s *ResourceService) MarkdownContent() (*MarkdownDocument, error) {
	path := filepath.Join(s.dir, "learning_sources.md")

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat markdown file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read markdown file: %w", err)
	}

	return &MarkdownDocument{
		Content:     string(data),
		Format:      "markdown",
		LastUpdated: info.ModTime().Format("2006-01-02"),
	}, nil
}

// Статичное дерево тем KCNA
var learningResourceTree = LearningResourceTree{
	Topics: []Topic{
		{
			ID:          1,
			Name:        "Kubernetes Fundamentals",
			Description: "Core concepts of Kubernetes",
			Subtopics: []string{
				"Pods and Containers",
				"Services and Networking",
				"Deployments and ReplicaSets",
				"ConfigMaps and Secrets",
				"Volumes and Storage",
			},
		},
		{
			ID:          2,
			Name:        "Cluster Architecture",
			Description: "Understanding Kubernetes cluster components",
			Subtopics: []string{
				"Control Plane Components",
				"Worker Node Components",
				"etcd Database",
				"API Server",
				"Scheduler and Controller Manager",
			},
		},
		{
			ID:          3,
			Name:        "Application Lifecycle",
			Description: "Managing applications in Kubernetes",
			Subtopics: []string{
				"Deployments",
				"Rolling Updates",
				"Rollbacks",
				"Health Checks",
				"Resource Limits",
			},
		},
		{
			ID:          4,
			Name:        "Networking",
			Description: "Kubernetes networking concepts",
			Subtopics: []string{
				"Services",
				"Ingress",
				"Network Policies",
				"DNS",
				"Load Balancing",
			},
		},
		{
			ID:          5,
			Name:        "Storage",
			Description: "Persistent storage in Kubernetes",
			Subtopics: []string{
				"PersistentVolumes",
				"PersistentVolumeClaims",
				"Storage Classes",
				"Dynamic Provisioning",
				"Volume Types",
			},
		},
	},
	Resources: []Resource{
		{
			Type:        "documentation",
			Title:       "Kubernetes Documentation",
			URL:         "https://kubernetes.io/docs/",
			Description: "Official Kubernetes documentation",
		},
		{
			Type:        "video",
			Title:       "Kubernetes Crash Course",
			URL:         "https://www.youtube.com/watch?v=s_o8dwV2m1Y",
			Description: "Quick overview of Kubernetes concepts",
		},
		{
			Type:        "practice",
			Title:       "Kubernetes Playground",
			URL:         "https://labs.play-with-k8s.com/",
			Description: "Interactive Kubernetes playground",
		},
	},
}

// Fallback на случай отсутствия learning_sources.json
var externalSourcesFallback = json.RawMessage(`{
  "learning_sources": [
    {
      "id": "kube-academy",
      "title": "KubeAcademy",
      "url": "https://kube.academy",
      "provider": "VMware",
      "type": "learning_platform",
      "difficulty": "mixed",
      "category": "kubernetes",
      "description": "Free Kubernetes learning platform offering courses, tutorials, and hands-on labs for all skill levels.",
      "topics": [
        "Kubernetes Fundamentals",
        "Advanced Concepts",
        "Security",
        "Networking",
        "Storage",
        "Monitoring",
        "Troubleshooting",
        "Best Practices"
      ],
      "duration": "self-paced",
      "cost": "free",
      "rating": 4.7
    },
    {
      "id": "freecodecamp-kcna",
      "title": "KCNA Study Course on freeCodeCamp",
      "url": "https://www.freecodecamp.org/news/tag/kubernetes/",
      "provider": "freeCodeCamp",
      "type": "course",
      "difficulty": "beginner",
      "category": "kubernetes",
      "description": "Comprehensive study guide and practice materials for the Kubernetes and Cloud Native Associate (KCNA) certification exam.",
      "topics": [
        "Kubernetes Fundamentals",
        "Cloud Native Concepts",
        "Container Orchestration",
        "Microservices Architecture",
        "DevOps Practices",
        "Exam Preparation",
        "Practice Questions"
      ],
      "duration": "self-paced",
      "cost": "free",
      "rating": 4.8
    }
  ],
  "categories": {
    "kubernetes": {
      "name": "Kubernetes",
      "description": "Container orchestration and management"
    }
  },
  "difficulty_levels": {
    "beginner": {
      "name": "Beginner",
      "description": "No prior experience required"
    },
    "intermediate": {
      "name": "Intermediate",
      "description": "Some prior knowledge recommended"
    }
  }
}`)
