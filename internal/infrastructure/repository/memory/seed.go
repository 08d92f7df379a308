package memory

import (
	"github.com/jogolindo/jogolindo-api/internal/domain/catalog"
)

func SeedProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:          "1",
			Name:        "Bola Oficial Jogo Lindo",
			Description: "Bola oficial de treinamento da escola Jogo Lindo.",
			Price:       149.99,
			ImageURL:    "https://images.pexels.com/photos/47730/the-ball-stadion-football-the-pitch-47730.jpeg",
			Category:    "Equipamentos",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Camisa de Treino",
			Description: "Camisa oficial para treinos com tecnologia de respiração.",
			Price:       89.99,
			ImageURL:    "https://images.pexels.com/photos/6767873/pexels-photo-6767873.jpeg",
			Category:    "Vestuário",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Chuteira Profissional",
			Description: "Chuteira para campos de grama natural com travas de alumínio.",
			Price:       299.99,
			ImageURL:    "https://images.pexels.com/photos/8224218/pexels-photo-8224218.jpeg",
			Category:    "Calçados",
			InStock:     false,
		},
	}
}

func SeedLessons() []catalog.VideoLesson {
	return []catalog.VideoLesson{
		{
			ID:           "1",
			Title:        "Resenha do Dia: Treino Completo",
			Description:  "Treino completo para melhorar suas habilidades no futebol.",
			VideoURL:     "https://www.youtube.com/watch?v=T0SMoG9MqMY",
			ThumbnailURL: "https://img.youtube.com/vi/T0SMoG9MqMY/maxresdefault.jpg",
			Module:       catalog.ModuleTechnique,
			Topic:        "Treino Completo",
			Duration:     15,
			CreatedAt:    "2024-03-19",
		},
		{
			ID:           "2",
			Title:        "Técnicas Avançadas de Futebol",
			Description:  "Aprenda técnicas avançadas para melhorar seu jogo.",
			VideoURL:     "https://www.youtube.com/watch?v=R1dsDM0pNL8",
			ThumbnailURL: "https://img.youtube.com/vi/R1dsDM0pNL8/maxresdefault.jpg",
			Module:       catalog.ModuleTechnique,
			Topic:        "Técnicas Avançadas",
			Duration:     12,
			CreatedAt:    "2024-03-18",
		},
		{
			ID:           "3",
			Title:        "Saúde no Futebol",
			Description:  "Dicas importantes sobre saúde e bem-estar para jogadores.",
			VideoURL:     "https://www.youtube.com/watch?v=Kyh9K3t9qyU",
			ThumbnailURL: "https://img.youtube.com/vi/Kyh9K3t9qyU/maxresdefault.jpg",
			Module:       catalog.ModuleHealth,
			Topic:        "Saúde e Bem-estar",
			Duration:     20,
			CreatedAt:    "2024-03-17",
		},
		{
			ID:           "4",
			Title:        "Táticas de Jogo",
			Description:  "Aprenda táticas essenciais para melhorar seu desempenho em campo.",
			VideoURL:     "https://www.youtube.com/watch?v=5jyu8Vi5bF8",
			ThumbnailURL: "https://img.youtube.com/vi/5jyu8Vi5bF8/maxresdefault.jpg",
			Module:       catalog.ModuleTactics,
			Topic:        "Táticas Básicas",
			Duration:     18,
			CreatedAt:    "2024-03-16",
		},
		{
			ID:           "5",
			Title:        "Cidadania no Esporte",
			Description:  "A importância da cidadania e valores no futebol.",
			VideoURL:     "https://www.youtube.com/watch?v=HPAle_k9MY4",
			ThumbnailURL: "https://img.youtube.com/vi/HPAle_k9MY4/maxresdefault.jpg",
			Module:       catalog.ModuleCitizenship,
			Topic:        "Valores no Esporte",
			Duration:     15,
			CreatedAt:    "2024-03-15",
		},
	}
}
