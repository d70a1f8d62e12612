package template

import "strconv"

// Sheet names, in workbook order.
const (
	SheetData    = "Données Brutes"
	SheetFencer  = "Analyse Escrimeur"
	SheetActions = "Analyse Actions"
	SheetCharts  = "Graphiques"
	SheetMacros  = "Macros & Auto"
)

// SheetNames lists the template sheets in workbook order.
var SheetNames = []string{SheetData, SheetFencer, SheetActions, SheetCharts, SheetMacros}

// DataHeaders is the header row of the raw-data sheet.
var DataHeaders = []string{
	"Date", "Heure", "Escrimeur_1", "Escrimeur_2", "Score_1", "Score_2",
	"Touche_Num", "Escrimeur_Touchant", "Action_Code", "Action_Nom",
	"Zone_Touchee", "Validite", "Duree_Action", "Efficacite",
}

// FencerHeaders is the header row of the per-fencer analysis sheet.
var FencerHeaders = []string{
	"Escrimeur", "Matchs_Joués", "Victoires", "Défaites", "Ratio_Victoires",
	"Touches_Données", "Touches_Reçues", "Efficacité_Globale",
}

// FencerExample is the example row of the per-fencer analysis sheet.
// The formulas are stored as text.
var FencerExample = []string{
	"Exemple_Escrimeur",
	`=COUNTIFS('Données Brutes'.C:C,A3)+COUNTIFS('Données Brutes'.D:D,A3)`,
	`=SUMPRODUCT(('Données Brutes'.C:C=A3)*('Données Brutes'.E:E>'Données Brutes'.F:F)+('Données Brutes'.D:D=A3)*('Données Brutes'.F:F>'Données Brutes'.E:E))`,
	`=B3-C3`,
	`=IF(B3>0,C3/B3,0)`,
	`=COUNTIFS('Données Brutes'.H:H,A3)`,
	`=COUNTIFS('Données Brutes'.C:C,A3,'Données Brutes'.H:H,"<>"&A3)+COUNTIFS('Données Brutes'.D:D,A3,'Données Brutes'.H:H,"<>"&A3)`,
	`=IF(F3+G3>0,F3/(F3+G3),0)`,
}

// ActionHeaders is the header row of the action analysis sheet.
var ActionHeaders = []string{
	"Action_Code", "Action_Nom", "Fréquence", "Efficacité", "Zone_Préférée", "Recommandation",
}

// Action is one example row of the action analysis sheet.
type Action struct {
	Code           string
	Name           string
	Zone           string
	Recommendation string
}

// Actions are the example actions, written from row 3.
var Actions = []Action{
	{"ATT_D", "Attaque Directe", "Torse", "Action efficace - Maintenir"},
	{"RIP_D", "Riposte Directe", "Bras", "Améliorer précision"},
	{"PAR_RIP", "Parade-Riposte", "Torse", "Excellente défense"},
	{"CTR_ATT", "Contre-Attaque", "Bras", "Timing à améliorer"},
	{"ATT_C", "Attaque Composée", "Torse", "Complexité maîtrisée"},
}

// ActionRow returns the cells of the action written at sheet row row.
func ActionRow(a Action, row int) []string {
	return []string{
		a.Code,
		a.Name,
		`=COUNTIFS('Données Brutes'.I:I,"` + a.Code + `")`,
		`=COUNTIFS('Données Brutes'.I:I,"` + a.Code + `",'Données Brutes'.L:L,"Valide")/C` + strconv.Itoa(row),
		a.Zone,
		a.Recommendation,
	}
}

// EfficiencyRange is the color-scaled efficiency column of the action sheet.
const EfficiencyRange = "D3:D7"

// Color scale stops of EfficiencyRange.
const (
	ScaleMinColor = "FF6B6B"
	ScaleMidColor = "FFEB3B"
	ScaleMaxColor = "4ECDC4"
	ScaleMidValue = "50"
)

// Placeholder is a merged zone of the chart sheet describing a chart to build.
type Placeholder struct {
	TopLeft     string
	BottomRight string
	Text        string
}

// Placeholders are the chart zones of the chart sheet.
var Placeholders = []Placeholder{
	{"A3", "D15", "GRAPHIQUE 1: Répartition des Actions\n\n(Graphique en secteurs)\n\nDonnées: Feuille \"Analyse Actions\"\nColonnes: Action_Nom, Fréquence"},
	{"F3", "H15", "GRAPHIQUE 2: Efficacité par Action\n\n(Graphique en barres)\n\nDonnées: Feuille \"Analyse Actions\"\nColonnes: Action_Nom, Efficacité"},
	{"A17", "H25", "GRAPHIQUE 3: Évolution des Performances\n\n(Graphique linéaire)\n\nDonnées: Feuille \"Données Brutes\"\nAxe X: Date, Axe Y: Efficacité par match"},
}

// MacroLines is the documentation written in column A of the macro sheet.
// The VBA it contains is never executed.
var MacroLines = []string{
	"INSTRUCTIONS POUR LES MACROS EXCEL",
	"",
	"1. MACRO IMPORT_CSV:",
	"   - Ouvre le sélecteur de fichier CSV",
	`   - Importe automatiquement dans "Données Brutes"`,
	"   - Met à jour tous les calculs",
	"",
	"2. MACRO REFRESH_ANALYSIS:",
	"   - Recalcule toutes les formules",
	"   - Met à jour les graphiques",
	"   - Applique la mise en forme conditionnelle",
	"",
	"3. MACRO EXPORT_REPORT:",
	"   - Génère un rapport PDF",
	"   - Exporte les graphiques",
	"   - Sauvegarde avec timestamp",
	"",
	"CODE VBA À AJOUTER:",
	"",
	"Sub Import_CSV()",
	"    Dim filePath As String",
	`    filePath = Application.GetOpenFilename("CSV Files (*.csv), *.csv")`,
	`    If filePath <> "False" Then`,
	"        Workbooks.OpenText filePath, DataType:=xlDelimited, Comma:=True",
	`        ' Copier données vers feuille "Données Brutes"`,
	"        ' Code d'import personnalisé ici",
	"    End If",
	"End Sub",
	"",
	"Sub Refresh_Analysis()",
	"    Application.CalculateFullRebuild",
	"    ' Mise à jour des graphiques",
	"    ' Code de rafraîchissement ici",
	"End Sub",
}
