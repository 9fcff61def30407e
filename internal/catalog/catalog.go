// Package catalog holds the fixed training content: the ordered instruction
// pages and the quiz questions. Both are process-wide constants, loaded once
// and never mutated at runtime.
package catalog

// PassThreshold is the minimum fraction of correct answers required to pass.
const PassThreshold = 0.8

// Page is one instruction page of the training sequence.
type Page struct {
	Title    string
	Template string
}

// Question is one true/false quiz statement with its correct answer.
type Question struct {
	Statement string
	Answer    bool
}

// Pages lists the instruction pages in presentation order. Page numbers in
// URLs are 1-based indexes into this slice.
var Pages = []Page{
	{Title: "Begrüßung", Template: "01_begruesung.html"},
	{Title: "Arten von Unterweisungen", Template: "02_arten.html"},
	{Title: "Grundsätze", Template: "03_grundsaetze.html"},
	{Title: "Gesetzliche Grundlagen", Template: "04_gesetze.html"},
	{Title: "Zuständige Stellen", Template: "05_stellen.html"},
	{Title: "Sicherheit am Arbeitsplatz", Template: "06_sicherheit.html"},
	{Title: "Erste Hilfe", Template: "07_erstehilfe.html"},
	{Title: "Brandschutz und Evakuierung", Template: "08_brand_evakuierung.html"},
	{Title: "Unfallvermeidung", Template: "09_unfallvermeidung.html"},
	{Title: "Abschluss", Template: "10_abschluss.html"},
}

// Questions lists the quiz statements in presentation order. Form fields are
// named q1..qN following this order.
var Questions = []Question{
	{Statement: "Sicherheit am Arbeitsplatz hat höchste Priorität.", Answer: true},
	{Statement: "Sicherheit behindert den Arbeitserfolg.", Answer: false},
	{Statement: "Flucht- und Rettungswege dürfen zugestellt werden.", Answer: false},
	{Statement: "Jede Verletzung muss gemeldet werden.", Answer: true},
	{Statement: "Ein Eintrag im Verbandbuch ist Pflicht.", Answer: true},
}
