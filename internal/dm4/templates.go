package dm4

// The templates below are the format contract with the official
// program. Every literal, every key name and the order of the verbs are
// fixed externally; a change to the official format is a change to this
// file and nothing else.

// dateLayout is the German day-first date form the official program
// expects.
const dateLayout = "02.01.2006"

// senderTemplate takes club name, given name, surname, address, postal
// code, town, private phone, public phone, fax, mobile, mail.
const senderTemplate = `[Anmelder]
Verein="%s"
Vorname="%s"
Nachname="%s"
Strasse="%s"
PLZ="%d"
Ort="%s"
TelPrivat="%s"
TelDienst="%s"
Fax="%s"
Mobil="%s"
EMail="%s"
`

// clubTemplate takes club name, club number, surname, given name,
// address, postal code, town, private phone, public phone, mobile,
// mail, fax, county, region, state, group, nation. Note the swapped
// name order and the fax position; the official program wants them
// this way.
const clubTemplate = `[Verein]
Name="%s"
Vereinsnummer="%d"
Nachname="%s"
Vorname="%s"
Strasse="%s"
PLZ="%d"
Ort="%s"
TelPrivat="%s"
TelDienst="%s"
Mobil="%s"
EMail="%s"
Fax="%s"
Kreis="%s"
Bezirk="%s"
Land="%s"
Gruppe="%s"
Nation="%s"
`

// athleteTemplate takes surname, given name, belt number, rendered
// weight, birth year. It is a fragment of a list line, opening its
// first cell but leaving the last one unclosed; athleteListLine
// supplies the closing quote.
const athleteTemplate = `"%s","%s","%s","%s","%d`

// athleteListLine wraps one athleteTemplate expansion into a list
// entry: position, then the literal "1" cell, then the athlete fields.
// The doubled quotes are part of the format.
const athleteListLine = `%d=""1",%s"`

// tournamentTemplate takes the rendered sender block, event name, date
// (dateLayout), place, age category, gender code twice, the rendered
// club block, the athlete list block and the athlete count.
const tournamentTemplate = `%s[Turnier]
Bezeichnung="%s"
Datum="%s"
Ort="%s"
Altersklasse="%s"
Geschlecht="%s"
GeschlechtKT="%s"
%s[Teilnehmer]
%s
Anzahl=%d
`
