package realtime

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/service"
)

// Gateway binds the websocket protocol to the service layer. Commands
// decode into a closed set of typed payloads dispatched through one
// handler table; an unknown event yields an "error" reply to the
// requester and never touches the other clients.
type Gateway struct {
	hub      *Hub
	svc      *service.Service
	logger   *zap.Logger
	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

type handlerFunc func(ctx context.Context, c *Client, env *Envelope)

// NewGateway creates a Gateway serving the given hub. allowOrigins
// restricts the websocket handshake; an empty list allows any origin.
func NewGateway(hub *Hub, svc *service.Service, allowOrigins []string, logger *zap.Logger) *Gateway {
	gw := &Gateway{
		hub:    hub,
		svc:    svc,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowOrigins),
		},
	}
	gw.handlers = gw.buildHandlerTable()
	return gw
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}

// ServeWS upgrades the request and runs the client pumps. The gateway
// carries no authentication; it is exposed on the trusted planning
// network only.
func (gw *Gateway) ServeWS(c *gin.Context) {
	conn, err := gw.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		gw.logger.Error("échec de l'upgrade websocket", zap.Error(err))
		return
	}

	client := newClient(gw.hub, conn, gw.logger)
	gw.hub.register <- client

	go client.writePump()
	go client.readPump(gw)
}

// Dispatch routes one inbound envelope. Exposed for the gateway tests,
// which drive clients without a network connection.
func (gw *Gateway) Dispatch(ctx context.Context, c *Client, env *Envelope) {
	handler, ok := gw.handlers[env.Event]
	if !ok {
		gw.logger.Warn("événement inconnu", zap.String("event", env.Event))
		gw.fail(c, env, "événement inconnu: "+env.Event)
		return
	}
	handler(ctx, c, env)
}

// ── reply helpers ──

// fail reports a per-request failure to the requester only.
func (gw *Gateway) fail(c *Client, env *Envelope, message string) {
	c.reply("error", ErrorPayload{Message: message}, "")
	if env.Ack != "" {
		c.reply("ack", AckResult{Success: false, Message: message}, env.Ack)
	}
}

func (gw *Gateway) ok(c *Client, env *Envelope, message string) {
	if env.Ack != "" {
		c.reply("ack", AckResult{Success: true, Message: message}, env.Ack)
	}
}

func decode(env *Envelope, v interface{}) error {
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, v)
}

// idPayload targets a single record.
type idPayload struct {
	ID string `json:"id"`
}

// movePayload relocates a course to another grid cell.
type movePayload struct {
	ID   string `json:"id"`
	Jour string `json:"jour"`
	Uhr  string `json:"uhr"`
}

// annotationsPayload frames an annotations update with its week key.
type annotationsPayload struct {
	Semaine     int               `json:"semaine"`
	Annee       int               `json:"annee"`
	Annotations map[string]string `json:"annotations"`
}

// pasteWeekResult is the pasteWeekSuccess payload.
type pasteWeekResult struct {
	Count      int `json:"count"`
	TargetWeek int `json:"targetWeek"`
	TargetYear int `json:"targetYear"`
}

// ── collection broadcasts ──

func (gw *Gateway) broadcastCours(ctx context.Context) {
	list, err := gw.svc.Planning.ListCours(ctx, nil)
	if err != nil {
		gw.logger.Error("échec du broadcast des cours", zap.Error(err))
		return
	}
	gw.hub.Broadcast("coursUpdate", list)
}

func (gw *Gateway) broadcastSurveillances(ctx context.Context) {
	list, err := gw.svc.Surveillance.ListSurveillances(ctx, nil)
	if err != nil {
		gw.logger.Error("échec du broadcast des surveillances", zap.Error(err))
		return
	}
	gw.hub.Broadcast("surveillancesUpdate", list)
}

func (gw *Gateway) broadcastUhrs(ctx context.Context) {
	list, err := gw.svc.Uhr.ListUhrs(ctx)
	if err != nil {
		gw.logger.Error("échec du broadcast des créneaux", zap.Error(err))
		return
	}
	gw.hub.Broadcast("uhrsUpdate", list)
}

func (gw *Gateway) broadcastEnseignants(ctx context.Context) {
	list, err := gw.svc.Reference.ListEnseignants(ctx)
	if err != nil {
		gw.logger.Error("échec du broadcast des enseignants", zap.Error(err))
		return
	}
	gw.hub.Broadcast("enseignantsUpdate", list)
}

func (gw *Gateway) broadcastClasses(ctx context.Context) {
	list, err := gw.svc.Reference.ListClasses(ctx)
	if err != nil {
		gw.logger.Error("échec du broadcast des classes", zap.Error(err))
		return
	}
	gw.hub.Broadcast("classesUpdate", list)
}

func (gw *Gateway) broadcastSalles(ctx context.Context) {
	list, err := gw.svc.Reference.ListSalles(ctx)
	if err != nil {
		gw.logger.Error("échec du broadcast des salles", zap.Error(err))
		return
	}
	gw.hub.Broadcast("sallesUpdate", list)
}

func (gw *Gateway) broadcastMatieres(ctx context.Context) {
	list, err := gw.svc.Reference.ListMatieres(ctx)
	if err != nil {
		gw.logger.Error("échec du broadcast des matières", zap.Error(err))
		return
	}
	gw.hub.Broadcast("matieresUpdate", list)
}

func (gw *Gateway) broadcastAnnotations(ctx context.Context, semaine, annee int) {
	notes, err := gw.svc.Annotation.GetAnnotations(ctx, semaine, annee)
	if err != nil {
		gw.logger.Error("échec du broadcast des annotations", zap.Error(err))
		return
	}
	gw.hub.Broadcast("annotationsUpdate", annotationsPayload{
		Semaine: semaine, Annee: annee, Annotations: notes,
	})
}

// ── handler table ──

func (gw *Gateway) buildHandlerTable() map[string]handlerFunc {
	return map[string]handlerFunc{
		// courses
		"getCours":    gw.handleGetCours,
		"addCours":    gw.handleAddCours,
		"updateCours": gw.handleUpdateCours,
		"moveCours":   gw.handleMoveCours,
		"deleteCours": gw.handleDeleteCours,
		"pasteWeek":   gw.handlePasteWeek,

		// supervisions
		"getSurveillances":   gw.handleGetSurveillances,
		"addSurveillance":    gw.handleAddSurveillance,
		"updateSurveillance": gw.handleUpdateSurveillance,
		"deleteSurveillance": gw.handleDeleteSurveillance,

		// time slots
		"getZeitslots": gw.handleGetZeitslots,
		"addUhr":       gw.handleAddUhr,
		"updateUhr":    gw.handleUpdateUhr,
		"deleteUhr":    gw.handleDeleteUhr,

		// reference data
		"getEnseignants":   gw.handleGetEnseignants,
		"addEnseignant":    gw.handleAddEnseignant,
		"updateEnseignant": gw.handleUpdateEnseignant,
		"deleteEnseignant": gw.handleDeleteEnseignant,
		"getClasses":       gw.handleGetClasses,
		"addClasse":        gw.handleAddClasse,
		"updateClasse":     gw.handleUpdateClasse,
		"deleteClasse":     gw.handleDeleteClasse,
		"getSalles":        gw.handleGetSalles,
		"addSalle":         gw.handleAddSalle,
		"updateSalle":      gw.handleUpdateSalle,
		"deleteSalle":      gw.handleDeleteSalle,
		"getMatieres":      gw.handleGetMatieres,
		"addMatiere":       gw.handleAddMatiere,
		"updateMatiere":    gw.handleUpdateMatiere,
		"deleteMatiere":    gw.handleDeleteMatiere,

		// annotations
		"getAnnotations": gw.handleGetAnnotations,
		"saveAnnotation": gw.handleSaveAnnotation,
	}
}

// ── courses ──

func (gw *Gateway) handleGetCours(ctx context.Context, c *Client, env *Envelope) {
	var filter dto.CoursFilter
	if err := decode(env, &filter); err != nil {
		gw.fail(c, env, "filtre de cours illisible")
		return
	}
	list, err := gw.svc.Planning.ListCours(ctx, &filter)
	if err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	c.reply("coursUpdate", list, env.Ack)
}

func (gw *Gateway) handleAddCours(ctx context.Context, c *Client, env *Envelope) {
	var draft dto.CoursDraft
	if err := decode(env, &draft); err != nil {
		gw.fail(c, env, "cours illisible")
		return
	}
	if _, err := gw.svc.Planning.AddCours(ctx, &draft); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "cours ajouté")
	gw.broadcastCours(ctx)
}

func (gw *Gateway) handleUpdateCours(ctx context.Context, c *Client, env *Envelope) {
	var patch dto.CoursPatch
	if err := decode(env, &patch); err != nil {
		gw.fail(c, env, "cours illisible")
		return
	}
	if _, err := gw.svc.Planning.UpdateCours(ctx, &patch); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "cours mis à jour")
	gw.broadcastCours(ctx)
}

func (gw *Gateway) handleMoveCours(ctx context.Context, c *Client, env *Envelope) {
	var move movePayload
	if err := decode(env, &move); err != nil {
		gw.fail(c, env, "déplacement illisible")
		return
	}
	if _, err := gw.svc.Planning.MoveCours(ctx, move.ID, move.Jour, move.Uhr); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "cours déplacé")
	gw.broadcastCours(ctx)
}

func (gw *Gateway) handleDeleteCours(ctx context.Context, c *Client, env *Envelope) {
	var target idPayload
	if err := decode(env, &target); err != nil {
		gw.fail(c, env, "identifiant illisible")
		return
	}
	if err := gw.svc.Planning.DeleteCours(ctx, target.ID); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "cours supprimé")
	gw.broadcastCours(ctx)
}

// handlePasteWeek answers pasteWeekSuccess or pasteWeekError to the
// requester; only a successful paste is broadcast.
func (gw *Gateway) handlePasteWeek(ctx context.Context, c *Client, env *Envelope) {
	var req dto.PasteWeekRequest
	if err := decode(env, &req); err != nil {
		c.reply("pasteWeekError", ErrorPayload{Message: "requête illisible"}, env.Ack)
		return
	}
	pasted, err := gw.svc.Planning.PasteWeek(ctx, &req)
	if err != nil {
		c.reply("pasteWeekError", ErrorPayload{Message: err.Error()}, env.Ack)
		return
	}
	c.reply("pasteWeekSuccess", pasteWeekResult{
		Count:      len(pasted),
		TargetWeek: req.TargetWeek,
		TargetYear: req.TargetYear,
	}, env.Ack)
	gw.broadcastCours(ctx)
}

// ── supervisions ──

func (gw *Gateway) handleGetSurveillances(ctx context.Context, c *Client, env *Envelope) {
	var filter dto.SurveillanceFilter
	if err := decode(env, &filter); err != nil {
		gw.fail(c, env, "filtre de surveillances illisible")
		return
	}
	list, err := gw.svc.Surveillance.ListSurveillances(ctx, &filter)
	if err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	c.reply("surveillancesUpdate", list, env.Ack)
}

func (gw *Gateway) handleAddSurveillance(ctx context.Context, c *Client, env *Envelope) {
	var draft dto.SurveillanceDraft
	if err := decode(env, &draft); err != nil {
		gw.fail(c, env, "surveillance illisible")
		return
	}
	if _, err := gw.svc.Surveillance.AddSurveillance(ctx, &draft); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "surveillance ajoutée")
	gw.broadcastSurveillances(ctx)
}

func (gw *Gateway) handleUpdateSurveillance(ctx context.Context, c *Client, env *Envelope) {
	var patch dto.SurveillancePatch
	if err := decode(env, &patch); err != nil {
		gw.fail(c, env, "surveillance illisible")
		return
	}
	if _, err := gw.svc.Surveillance.UpdateSurveillance(ctx, &patch); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "surveillance mise à jour")
	gw.broadcastSurveillances(ctx)
}

func (gw *Gateway) handleDeleteSurveillance(ctx context.Context, c *Client, env *Envelope) {
	var target idPayload
	if err := decode(env, &target); err != nil {
		gw.fail(c, env, "identifiant illisible")
		return
	}
	if err := gw.svc.Surveillance.DeleteSurveillance(ctx, target.ID); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "surveillance supprimée")
	gw.broadcastSurveillances(ctx)
}

// ── time slots ──

func (gw *Gateway) handleGetZeitslots(ctx context.Context, c *Client, env *Envelope) {
	list, err := gw.svc.Uhr.ListUhrs(ctx)
	if err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	c.reply("uhrsUpdate", list, env.Ack)
}

func (gw *Gateway) handleAddUhr(ctx context.Context, c *Client, env *Envelope) {
	var draft dto.UhrDraft
	if err := decode(env, &draft); err != nil {
		gw.fail(c, env, "créneau illisible")
		return
	}
	if _, err := gw.svc.Uhr.AddUhr(ctx, &draft); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "créneau ajouté")
	gw.broadcastUhrs(ctx)
}

func (gw *Gateway) handleUpdateUhr(ctx context.Context, c *Client, env *Envelope) {
	var patch dto.UhrPatch
	if err := decode(env, &patch); err != nil {
		gw.fail(c, env, "créneau illisible")
		return
	}
	if _, err := gw.svc.Uhr.UpdateUhr(ctx, &patch); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "créneau mis à jour")
	gw.broadcastUhrs(ctx)
}

func (gw *Gateway) handleDeleteUhr(ctx context.Context, c *Client, env *Envelope) {
	var target idPayload
	if err := decode(env, &target); err != nil {
		gw.fail(c, env, "identifiant illisible")
		return
	}
	if err := gw.svc.Uhr.DeleteUhr(ctx, target.ID); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "créneau supprimé")
	gw.broadcastUhrs(ctx)
}

// ── reference data ──

func (gw *Gateway) handleGetEnseignants(ctx context.Context, c *Client, env *Envelope) {
	list, err := gw.svc.Reference.ListEnseignants(ctx)
	if err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	c.reply("enseignantsUpdate", list, env.Ack)
}

func (gw *Gateway) handleAddEnseignant(ctx context.Context, c *Client, env *Envelope) {
	var draft dto.EnseignantDraft
	if err := decode(env, &draft); err != nil {
		gw.fail(c, env, "enseignant illisible")
		return
	}
	if _, err := gw.svc.Reference.AddEnseignant(ctx, &draft); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "enseignant ajouté")
	gw.broadcastEnseignants(ctx)
}

func (gw *Gateway) handleUpdateEnseignant(ctx context.Context, c *Client, env *Envelope) {
	var patch dto.EnseignantPatch
	if err := decode(env, &patch); err != nil {
		gw.fail(c, env, "enseignant illisible")
		return
	}
	if _, err := gw.svc.Reference.UpdateEnseignant(ctx, &patch); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "enseignant mis à jour")
	gw.broadcastEnseignants(ctx)
}

func (gw *Gateway) handleDeleteEnseignant(ctx context.Context, c *Client, env *Envelope) {
	var target idPayload
	if err := decode(env, &target); err != nil {
		gw.fail(c, env, "identifiant illisible")
		return
	}
	if err := gw.svc.Reference.DeleteEnseignant(ctx, target.ID); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "enseignant supprimé")
	gw.broadcastEnseignants(ctx)
}

func (gw *Gateway) handleGetClasses(ctx context.Context, c *Client, env *Envelope) {
	list, err := gw.svc.Reference.ListClasses(ctx)
	if err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	c.reply("classesUpdate", list, env.Ack)
}

func (gw *Gateway) handleAddClasse(ctx context.Context, c *Client, env *Envelope) {
	var draft dto.ClasseDraft
	if err := decode(env, &draft); err != nil {
		gw.fail(c, env, "classe illisible")
		return
	}
	if _, err := gw.svc.Reference.AddClasse(ctx, &draft); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "classe ajoutée")
	gw.broadcastClasses(ctx)
}

func (gw *Gateway) handleUpdateClasse(ctx context.Context, c *Client, env *Envelope) {
	var patch dto.ClassePatch
	if err := decode(env, &patch); err != nil {
		gw.fail(c, env, "classe illisible")
		return
	}
	if _, err := gw.svc.Reference.UpdateClasse(ctx, &patch); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "classe mise à jour")
	gw.broadcastClasses(ctx)
}

func (gw *Gateway) handleDeleteClasse(ctx context.Context, c *Client, env *Envelope) {
	var target idPayload
	if err := decode(env, &target); err != nil {
		gw.fail(c, env, "identifiant illisible")
		return
	}
	if err := gw.svc.Reference.DeleteClasse(ctx, target.ID); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "classe supprimée")
	gw.broadcastClasses(ctx)
}

func (gw *Gateway) handleGetSalles(ctx context.Context, c *Client, env *Envelope) {
	list, err := gw.svc.Reference.ListSalles(ctx)
	if err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	c.reply("sallesUpdate", list, env.Ack)
}

func (gw *Gateway) handleAddSalle(ctx context.Context, c *Client, env *Envelope) {
	var draft dto.SalleDraft
	if err := decode(env, &draft); err != nil {
		gw.fail(c, env, "salle illisible")
		return
	}
	if _, err := gw.svc.Reference.AddSalle(ctx, &draft); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "salle ajoutée")
	gw.broadcastSalles(ctx)
}

func (gw *Gateway) handleUpdateSalle(ctx context.Context, c *Client, env *Envelope) {
	var patch dto.SallePatch
	if err := decode(env, &patch); err != nil {
		gw.fail(c, env, "salle illisible")
		return
	}
	if _, err := gw.svc.Reference.UpdateSalle(ctx, &patch); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "salle mise à jour")
	gw.broadcastSalles(ctx)
}

func (gw *Gateway) handleDeleteSalle(ctx context.Context, c *Client, env *Envelope) {
	var target idPayload
	if err := decode(env, &target); err != nil {
		gw.fail(c, env, "identifiant illisible")
		return
	}
	if err := gw.svc.Reference.DeleteSalle(ctx, target.ID); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "salle supprimée")
	gw.broadcastSalles(ctx)
}

func (gw *Gateway) handleGetMatieres(ctx context.Context, c *Client, env *Envelope) {
	list, err := gw.svc.Reference.ListMatieres(ctx)
	if err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	c.reply("matieresUpdate", list, env.Ack)
}

func (gw *Gateway) handleAddMatiere(ctx context.Context, c *Client, env *Envelope) {
	var draft dto.MatiereDraft
	if err := decode(env, &draft); err != nil {
		gw.fail(c, env, "matière illisible")
		return
	}
	if _, err := gw.svc.Reference.AddMatiere(ctx, &draft); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "matière ajoutée")
	gw.broadcastMatieres(ctx)
}

func (gw *Gateway) handleUpdateMatiere(ctx context.Context, c *Client, env *Envelope) {
	var patch dto.MatierePatch
	if err := decode(env, &patch); err != nil {
		gw.fail(c, env, "matière illisible")
		return
	}
	if _, err := gw.svc.Reference.UpdateMatiere(ctx, &patch); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "matière mise à jour")
	gw.broadcastMatieres(ctx)
}

func (gw *Gateway) handleDeleteMatiere(ctx context.Context, c *Client, env *Envelope) {
	var target idPayload
	if err := decode(env, &target); err != nil {
		gw.fail(c, env, "identifiant illisible")
		return
	}
	if err := gw.svc.Reference.DeleteMatiere(ctx, target.ID); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "matière supprimée")
	gw.broadcastMatieres(ctx)
}

// ── annotations ──

func (gw *Gateway) handleGetAnnotations(ctx context.Context, c *Client, env *Envelope) {
	var week dto.WeekKey
	if err := decode(env, &week); err != nil {
		gw.fail(c, env, "semaine illisible")
		return
	}
	notes, err := gw.svc.Annotation.GetAnnotations(ctx, week.Semaine, week.Annee)
	if err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	c.reply("annotationsUpdate", annotationsPayload{
		Semaine: week.Semaine, Annee: week.Annee, Annotations: notes,
	}, env.Ack)
}

func (gw *Gateway) handleSaveAnnotation(ctx context.Context, c *Client, env *Envelope) {
	var req dto.AnnotationSave
	if err := decode(env, &req); err != nil {
		gw.fail(c, env, "annotation illisible")
		return
	}
	if _, err := gw.svc.Annotation.SaveAnnotation(ctx, &req); err != nil {
		gw.fail(c, env, err.Error())
		return
	}
	gw.ok(c, env, "annotation enregistrée")
	gw.broadcastAnnotations(ctx, req.Semaine, req.Annee)
}
