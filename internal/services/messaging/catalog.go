package messaging

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// English strings are the catalog keys; a printer falls back to the key
// when a language has no entry.
const (
	titlePartyCreated   = "Party created"
	titlePlayerJoined   = "New player"
	titlePlayerLeft     = "Player left"
	titleNewManager     = "New manager"
	titlePartyClosed    = "Party closed"
	titleMatchStarted   = "Match started"
	titleRound          = "Round %d"
	titleVote           = "Vote recorded"
	titleRoundResults   = "Round %d results"
	titleMatchOver      = "Match over"
	titleGameStatus     = "Game status"
	titleOpenParties    = "Open parties"
	titleYourParty      = "Your party"
	titleCommands       = "Commands"
	titleInvalid        = "That didn't work"
	titleNotFound       = "Not found"
	titleConflict       = "Already taken"
	titleNotAllowed     = "Not allowed"
	titleNotNow         = "Not right now"
	titleSomethingWrong = "Something went wrong"

	bodyPartyCreated   = "%s created the party \"%s\". Friends can join with: join %s"
	bodyPlayerJoined   = "%s joined \"%s\". Players: %s"
	bodyPlayerLeft     = "%s left \"%s\"."
	bodyHandedOver     = "%s is the new manager."
	bodyNewManager     = "%s is now the manager of \"%s\"."
	bodyPartyClosed    = "\"%s\" was closed because everyone left."
	bodyMatchStarted   = "The match in \"%s\" has started with %d players. The manager starts the first round with: next"
	bodyImpostor       = "You are the impostor! The secret word is %s. Don't get caught."
	bodyCrew           = "You are not the impostor. Talk it over, then vote with: vote <name>"
	bodyVote           = "%s voted (%d of %d)."
	bodyAccused        = "%s was accused with %d votes."
	bodyNobodyAccused  = "Nobody was accused."
	bodyImpostorWins   = "The impostor wins this round."
	bodyCrewWins       = "The crew found the impostor!"
	bodyScore          = "Score: impostor %d, crew %d."
	bodyMatchOver      = "The match in \"%s\" is over after %d rounds."
	bodyRoundActive    = "Round %d is in progress, %d of %d votes cast."
	bodyRoundWaiting   = "Round %d is over. The manager starts the next one with: next"
	bodyNotStarted     = "The match has not started yet."
	bodyNoRoundYet     = "No round has been played yet. The manager starts one with: next"
	bodyNoOpenParties  = "No open parties right now. Start one with: create <name>"
	bodyPartyLine      = "%s: %s (%s)"
	bodyYourParty      = "You are in \"%s\" (code %s, %s). Players: %s"
	bodyNoParty        = "You are not in a party."
	bodyHelp           = "create <name> [game] [language], join <code>, leave, parties, myparty, promote <name>, start, next [category], vote <name>, finishround, finishmatch, status, help"
	bodyCategories     = "Word categories: %s"
	bodyInternalFailed = "Something went wrong on our side. Please try again in a moment."
)

var (
	english    = language.English
	spanish    = language.Spanish
	portuguese = language.Portuguese

	supported = []language.Tag{english, spanish, portuguese}
)

var translations = map[string]map[language.Tag]string{
	titlePartyCreated:   {spanish: "Fiesta creada", portuguese: "Festa criada"},
	titlePlayerJoined:   {spanish: "Nuevo jugador", portuguese: "Novo jogador"},
	titlePlayerLeft:     {spanish: "Un jugador salió", portuguese: "Um jogador saiu"},
	titleNewManager:     {spanish: "Nuevo anfitrión", portuguese: "Novo anfitrião"},
	titlePartyClosed:    {spanish: "Fiesta cerrada", portuguese: "Festa encerrada"},
	titleMatchStarted:   {spanish: "Comenzó la partida", portuguese: "A partida começou"},
	titleRound:          {spanish: "Ronda %d", portuguese: "Rodada %d"},
	titleVote:           {spanish: "Voto registrado", portuguese: "Voto registrado"},
	titleRoundResults:   {spanish: "Resultados de la ronda %d", portuguese: "Resultado da rodada %d"},
	titleMatchOver:      {spanish: "Fin de la partida", portuguese: "Fim da partida"},
	titleGameStatus:     {spanish: "Estado del juego", portuguese: "Estado do jogo"},
	titleOpenParties:    {spanish: "Fiestas abiertas", portuguese: "Festas abertas"},
	titleYourParty:      {spanish: "Tu fiesta", portuguese: "Sua festa"},
	titleCommands:       {spanish: "Comandos", portuguese: "Comandos"},
	titleInvalid:        {spanish: "Eso no funcionó", portuguese: "Isso não funcionou"},
	titleNotFound:       {spanish: "No encontrado", portuguese: "Não encontrado"},
	titleConflict:       {spanish: "Ya ocupado", portuguese: "Já ocupado"},
	titleNotAllowed:     {spanish: "No permitido", portuguese: "Não permitido"},
	titleNotNow:         {spanish: "Ahora no", portuguese: "Agora não"},
	titleSomethingWrong: {spanish: "Algo salió mal", portuguese: "Algo deu errado"},

	bodyPartyCreated:   {spanish: "%s creó la fiesta \"%s\". Tus amigos pueden unirse con: join %s", portuguese: "%s criou a festa \"%s\". Seus amigos podem entrar com: join %s"},
	bodyPlayerJoined:   {spanish: "%s se unió a \"%s\". Jugadores: %s", portuguese: "%s entrou em \"%s\". Jogadores: %s"},
	bodyPlayerLeft:     {spanish: "%s salió de \"%s\".", portuguese: "%s saiu de \"%s\"."},
	bodyHandedOver:     {spanish: "%s es el nuevo anfitrión.", portuguese: "%s é o novo anfitrião."},
	bodyNewManager:     {spanish: "%s ahora dirige \"%s\".", portuguese: "%s agora comanda \"%s\"."},
	bodyPartyClosed:    {spanish: "\"%s\" se cerró porque todos se fueron.", portuguese: "\"%s\" foi encerrada porque todos saíram."},
	bodyMatchStarted:   {spanish: "La partida en \"%s\" comenzó con %d jugadores. El anfitrión inicia la primera ronda con: next", portuguese: "A partida em \"%s\" começou com %d jogadores. O anfitrião inicia a primeira rodada com: next"},
	bodyImpostor:       {spanish: "¡Eres el impostor! La palabra secreta es %s. Que no te descubran.", portuguese: "Você é o impostor! A palavra secreta é %s. Não seja descoberto."},
	bodyCrew:           {spanish: "No eres el impostor. Hablen y luego vota con: vote <nombre>", portuguese: "Você não é o impostor. Conversem e depois vote com: vote <nome>"},
	bodyVote:           {spanish: "%s votó (%d de %d).", portuguese: "%s votou (%d de %d)."},
	bodyAccused:        {spanish: "%s fue acusado con %d votos.", portuguese: "%s foi acusado com %d votos."},
	bodyNobodyAccused:  {spanish: "Nadie fue acusado.", portuguese: "Ninguém foi acusado."},
	bodyImpostorWins:   {spanish: "El impostor gana esta ronda.", portuguese: "O impostor vence esta rodada."},
	bodyCrewWins:       {spanish: "¡El grupo encontró al impostor!", portuguese: "O grupo encontrou o impostor!"},
	bodyScore:          {spanish: "Marcador: impostor %d, grupo %d.", portuguese: "Placar: impostor %d, grupo %d."},
	bodyMatchOver:      {spanish: "La partida en \"%s\" terminó después de %d rondas.", portuguese: "A partida em \"%s\" terminou depois de %d rodadas."},
	bodyRoundActive:    {spanish: "La ronda %d está en curso, %d de %d votos emitidos.", portuguese: "A rodada %d está em andamento, %d de %d votos."},
	bodyRoundWaiting:   {spanish: "La ronda %d terminó. El anfitrión inicia la siguiente con: next", portuguese: "A rodada %d terminou. O anfitrião inicia a próxima com: next"},
	bodyNotStarted:     {spanish: "La partida aún no comenzó.", portuguese: "A partida ainda não começou."},
	bodyNoRoundYet:     {spanish: "Todavía no se jugó ninguna ronda. El anfitrión inicia una con: next", portuguese: "Nenhuma rodada foi jogada ainda. O anfitrião inicia uma com: next"},
	bodyNoOpenParties:  {spanish: "No hay fiestas abiertas. Crea una con: create <nombre>", portuguese: "Não há festas abertas. Crie uma com: create <nome>"},
	bodyYourParty:      {spanish: "Estás en \"%s\" (código %s, %s). Jugadores: %s", portuguese: "Você está em \"%s\" (código %s, %s). Jogadores: %s"},
	bodyNoParty:        {spanish: "No estás en ninguna fiesta.", portuguese: "Você não está em nenhuma festa."},
	bodyCategories:     {spanish: "Categorías de palabras: %s", portuguese: "Categorias de palavras: %s"},
	bodyInternalFailed: {spanish: "Algo falló de nuestro lado. Inténtalo de nuevo en un momento.", portuguese: "Algo falhou do nosso lado. Tente novamente em instantes."},
}

// newCatalog registers the translations on a private catalog
func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(english))
	for key, byTag := range translations {
		if err := b.SetString(english, key, key); err != nil {
			return nil, err
		}
		for tag, msg := range byTag {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
