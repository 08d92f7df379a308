package tryout

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/ranking"
)

var states = []string{
	"São Paulo", "Rio de Janeiro", "Minas Gerais", "Bahia", "Paraná",
	"Rio Grande do Sul", "Pernambuco", "Ceará", "Pará", "Santa Catarina",
	"Goiás", "Maranhão", "Espírito Santo", "Paraíba", "Amazonas",
}

var clubs = []string{
	"Flamengo", "Palmeiras", "São Paulo FC", "Corinthians", "Santos FC",
	"Grêmio", "Internacional", "Atlético-MG", "Cruzeiro", "Botafogo",
	"Vasco da Gama", "Fluminense", "Bahia", "Sport Recife", "Ceará SC",
	"Fortaleza EC", "Athletico-PR", "Coritiba", "Chapecoense", "Avaí",
}

var venues = []string{
	"CT Barra Funda", "Ninho do Urubu", "CT Joaquim Grava", "CT Dr. Joaquim Grava",
	"Vila Belmiro", "CT Luiz Carvalho", "CT Parque Gigante", "Cidade do Galo",
	"Toca da Raposa", "CT General Severiano", "CT Carlos Castilho", "CT Vale das Laranjeiras",
	"CT Evaristo de Macedo", "CT José de Andrade Médicis", "CT Ribamar Bezerra",
	"CT Ribamar Bezerra", "CT do Caju", "CT Academia de Futebol", "Arena Condá", "CT do Avaí",
}

var citiesByState = map[string][]string{
	"São Paulo":         {"São Paulo", "Campinas", "Santos", "São Bernardo do Campo", "Guarulhos"},
	"Rio de Janeiro":    {"Rio de Janeiro", "Niterói", "Duque de Caxias", "Nova Iguaçu", "Campos dos Goytacazes"},
	"Minas Gerais":      {"Belo Horizonte", "Uberlândia", "Contagem", "Juiz de Fora", "Betim"},
	"Bahia":             {"Salvador", "Feira de Santana", "Vitória da Conquista", "Camaçari", "Jequié"},
	"Paraná":            {"Curitiba", "Londrina", "Maringá", "Ponta Grossa", "Cascavel"},
	"Rio Grande do Sul": {"Porto Alegre", "Caxias do Sul", "Pelotas", "Canoas", "Santa Maria"},
	"Pernambuco":        {"Recife", "Jaboatão dos Guararapes", "Olinda", "Caruaru", "Petrolina"},
	"Ceará":             {"Fortaleza", "Caucaia", "Juazeiro do Norte", "Maracanaú", "Sobral"},
	"Pará":              {"Belém", "Ananindeua", "Santarém", "Marabá", "Parauapebas"},
	"Santa Catarina":    {"Florianópolis", "Joinville", "Blumenau", "São José", "Criciúma"},
	"Goiás":             {"Goiânia", "Aparecida de Goiânia", "Anápolis", "Rio Verde", "Luziânia"},
	"Maranhão":          {"São Luís", "Imperatriz", "Timon", "Caxias", "Codó"},
	"Espírito Santo":    {"Vitória", "Vila Velha", "Cariacica", "Serra", "Linhares"},
	"Paraíba":           {"João Pessoa", "Campina Grande", "Santa Rita", "Patos", "Bayeux"},
	"Amazonas":          {"Manaus", "Parintins", "Itacoatiara", "Manacapuru", "Coari"},
}

var ageRanges = []string{"12-15 anos", "16-18 anos", "17-20 anos", "18-23 anos", "Livre"}

var requirementPool = []string{
	"Documento de identidade",
	"Atestado médico",
	"Autorização dos pais (menores de idade)",
	"Chuteira e material esportivo",
	"Taxa de inscrição",
}

var contactNames = []string{
	"Carlos Silva", "Ana Santos", "Roberto Oliveira", "Mariana Costa", "João Pedro",
	"Fernanda Lima", "Ricardo Almeida", "Juliana Ferreira", "Paulo Martins", "Camila Souza",
}

var imageURLs = []string{
	"https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg",
	"https://images.pexels.com/photos/3621104/pexels-photo-3621104.jpeg",
	"https://images.pexels.com/photos/114296/pexels-photo-114296.jpeg",
	"https://images.pexels.com/photos/1884574/pexels-photo-1884574.jpeg",
	"https://images.pexels.com/photos/3621121/pexels-photo-3621121.jpeg",
	"https://images.pexels.com/photos/8224167/pexels-photo-8224167.jpeg",
}

const collectionSize = 50

// GenerateEvent produces one listing with a future-biased date relative to
// now. The registration deadline lands 1-7 days before the event date.
func GenerateEvent(id string, now time.Time) Event {
	club := clubs[rand.IntN(len(clubs))]
	state := states[rand.IntN(len(states))]
	venue := venues[rand.IntN(len(venues))]

	date := now.AddDate(0, 0, randRange(1, 30))
	deadline := date.AddDate(0, 0, -randRange(1, 7))

	cityList, ok := citiesByState[state]
	if !ok {
		cityList = []string{state}
	}
	city := cityList[rand.IntN(len(cityList))]

	maxParticipants := randRange(50, 149)
	currentParticipants := rand.IntN(int(float64(maxParticipants)*0.8) + 1)

	cost := 0
	if rand.Float64() < 0.7 {
		cost = randRange(20, 119)
	}

	return Event{
		ID:          id,
		Title:       "Peneira " + club,
		Description: fmt.Sprintf("Seletiva oficial do %s para captação de novos talentos. Avaliação técnica, tática e física com comissão técnica especializada.", club),
		Club:        club,

		Date:                 date,
		Time:                 randomStartTime(),
		RegistrationDeadline: deadline,

		Venue:   venue,
		Address: fmt.Sprintf("%s, %s - %s", venue, city, state),
		City:    city,
		State:   state,
		Region:  RegionForState(state),

		AgeRange:  ageRanges[rand.IntN(len(ageRanges))],
		Positions: randomPositions(),

		MaxParticipants:     maxParticipants,
		CurrentParticipants: currentParticipants,

		Requirements: slices.Clone(requirementPool[:randRange(3, 5)]),
		Contact: Contact{
			Name:  contactNames[rand.IntN(len(contactNames))],
			Phone: randomPhone(),
			Email: contactEmail(club),
		},
		Cost:     cost,
		IsActive: rand.Float64() < 0.9,
		ImageURL: imageURLs[rand.IntN(len(imageURLs))],
	}
}

// GenerateCollection produces 50 listings sorted ascending by event date.
// Like the ranking roster, each call is an independent random sample.
func GenerateCollection(now time.Time) []Event {
	events := make([]Event, 0, collectionSize)
	for i := 1; i <= collectionSize; i++ {
		events = append(events, GenerateEvent(strconv.Itoa(i), now))
	}

	sortByDateAsc(events)

	return events
}

// randomStartTime picks a half-hour slot between 08:00 and 19:30.
func randomStartTime() string {
	hour := randRange(8, 19)
	minutes := "00"
	if rand.Float64() < 0.5 {
		minutes = "30"
	}
	return fmt.Sprintf("%02d:%s", hour, minutes)
}

// randomPositions shuffles all four positions and keeps the first 1-3.
func randomPositions() []ranking.Position {
	all := make([]ranking.Position, len(ranking.AllPositions))
	copy(all, ranking.AllPositions)
	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	return all[:randRange(1, 3)]
}

func randomPhone() string {
	return fmt.Sprintf("(%d) 9%d-%d", randRange(11, 99), randRange(1000, 9999), randRange(1000, 9999))
}

func contactEmail(club string) string {
	cleaned := strings.ToLower(club)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	var b strings.Builder
	for _, r := range cleaned {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return "peneira@" + b.String() + ".com.br"
}

func randRange(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}
