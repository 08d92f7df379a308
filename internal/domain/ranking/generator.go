package ranking

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"
)

var malePhotoURLs = []string{
	"https://images.pexels.com/photos/3621104/pexels-photo-3621104.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/2379005/pexels-photo-2379005.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1300402/pexels-photo-1300402.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
}

var femalePhotoURLs = []string{
	"https://images.pexels.com/photos/3621121/pexels-photo-3621121.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1391498/pexels-photo-1391498.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1065084/pexels-photo-1065084.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
	"https://images.pexels.com/photos/1043474/pexels-photo-1043474.jpeg?auto=compress&cs=tinysrgb&w=400&h=400&dpr=2",
}

var brazilianClubs = []string{
	"Flamengo", "Palmeiras", "São Paulo", "Corinthians", "Santos", "Grêmio",
	"Internacional", "Atlético-MG", "Cruzeiro", "Botafogo", "Vasco", "Fluminense",
	"Bahia", "Sport", "Ceará", "Fortaleza", "Athletico-PR", "Coritiba",
}

var internationalClubs = []string{
	"Barcelona", "Real Madrid", "Manchester United", "Liverpool", "Chelsea",
	"Arsenal", "Manchester City", "PSG", "Bayern Munich", "Juventus", "AC Milan",
	"Inter Milan", "Atletico Madrid", "Borussia Dortmund", "Ajax",
}

var agents = []string{
	"Carlos Silva Sports", "Brazilian Talents Agency", "Global Football Management",
	"Elite Player Representation", "South American Soccer Agency", "Pro Athletes Brazil",
	"International Football Partners", "Premier Sports Management",
}

var maleNames = []string{
	"Gabriel Silva", "Lucas Santos", "Rafael Oliveira", "Matheus Costa", "João Pedro",
	"Felipe Rodrigues", "Bruno Almeida", "Diego Ferreira", "Thiago Martins", "André Lima",
	"Vinicius Souza", "Gustavo Pereira", "Leonardo Barbosa", "Rodrigo Carvalho", "Pedro Henrique",
	"Caio Ribeiro", "Enzo Gomes", "Arthur Nascimento", "Davi Rocha", "Miguel Torres",
}

var femaleNames = []string{
	"Ana Silva", "Beatriz Santos", "Camila Oliveira", "Daniela Costa", "Eduarda Lima",
	"Fernanda Rodrigues", "Gabriela Almeida", "Helena Ferreira", "Isabela Martins", "Julia Souza",
	"Larissa Pereira", "Mariana Barbosa", "Natália Carvalho", "Olivia Ribeiro", "Paula Gomes",
	"Rafaela Nascimento", "Sofia Rocha", "Valentina Torres", "Yasmin Cruz", "Vitória Dias",
}

var hometowns = []string{
	"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Salvador", "Brasília",
	"Fortaleza", "Manaus", "Curitiba", "Recife", "Porto Alegre", "Goiânia",
	"Belém", "Guarulhos", "Campinas", "São Luís", "Maceió", "Natal", "João Pessoa",
}

const rosterSizePerGender = 15

// GenerateStats produces a random but internally consistent stats profile
// for the given position. Goalkeepers get weaker shooting/dribbling and a
// penalty-saves counter; all other optional fields follow fixed odds.
func GenerateStats(pos Position) Stats {
	isGoalkeeper := pos == PositionGoalkeeper

	s := Stats{
		Passing:   randRange(3, 5),
		Shooting:  randRange(3, 5),
		Dribbling: randRange(3, 5),
		Speed:     randRange(3, 5),
		Strength:  randRange(3, 5),
		Jumping:   randRange(3, 5),
		Goals:     randRange(5, 29),
		Assists:   randRange(2, 16),

		MatchesPlayed: randRange(20, 69),
	}

	if isGoalkeeper {
		s.Shooting = randRange(1, 2)
		s.Dribbling = randRange(1, 2)
		s.Goals = randRange(0, 2)
		saves := randRange(3, 12)
		s.PenaltySaves = &saves
	}

	s.Clubs = sampleClubs(randRange(1, 3))

	if rand.Float64() < 0.7 {
		s.Agent = agents[rand.IntN(len(agents))]
	}

	s.OverallRating = ComputeOverallRating(s)

	return s
}

// GeneratePlayer builds one ranking entry. The birth date is synthesized
// from the given age for display only; it is never re-aged afterwards.
func GeneratePlayer(id, name string, age int, gender Gender, photoURL string, pos Position) Player {
	now := time.Now()
	birthYear := now.Year() - age
	birthDate := fmt.Sprintf("%d-%02d-%02d", birthYear, randRange(1, 12), randRange(1, 28))

	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@email.com"

	return Player{
		ID:        id,
		Email:     email,
		Name:      name,
		Gender:    gender,
		BirthDate: birthDate,
		Country:   "Brasil",
		City:      hometowns[rand.IntN(len(hometowns))],
		Position:  pos,
		HeightCm:  randRange(165, 189),
		WeightKg:  randRange(60, 84),
		PhotoURL:  photoURL,
		CreatedAt: now.UTC().Format(time.RFC3339),
		Stats:     GenerateStats(pos),
		Age:       age,
	}
}

// GenerateRoster produces a fresh 30-player roster (15 per gender) sorted
// descending by overall rating. Each call yields an independent random
// sample; callers should generate once per session and hold the result.
func GenerateRoster() []Player {
	players := make([]Player, 0, 2*rosterSizePerGender)
	nextID := 1

	for i, name := range maleNames[:rosterSizePerGender] {
		players = append(players, GeneratePlayer(
			strconv.Itoa(nextID),
			name,
			randRange(16, 25),
			GenderMale,
			malePhotoURLs[i%len(malePhotoURLs)],
			AllPositions[rand.IntN(len(AllPositions))],
		))
		nextID++
	}

	for i, name := range femaleNames[:rosterSizePerGender] {
		players = append(players, GeneratePlayer(
			strconv.Itoa(nextID),
			name,
			randRange(16, 25),
			GenderFemale,
			femalePhotoURLs[i%len(femalePhotoURLs)],
			AllPositions[rand.IntN(len(AllPositions))],
		))
		nextID++
	}

	sortByRatingDesc(players)

	return players
}

// sortByRatingDesc is stable: equal ratings keep their generation order,
// there is no secondary tie-break key.
func sortByRatingDesc(players []Player) {
	slices.SortStableFunc(players, func(a, b Player) int {
		return b.Stats.OverallRating - a.Stats.OverallRating
	})
}

func sampleClubs(n int) []string {
	pool := make([]string, 0, len(brazilianClubs)+len(internationalClubs))
	pool = append(pool, brazilianClubs...)
	pool = append(pool, internationalClubs...)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return slices.Clone(pool[:n])
}

// randRange returns a uniform integer in [lo, hi].
func randRange(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}
