package analyzer

import "fmt"

// The prompts are fixed templates parameterized by match metadata. The oracle
// is told to answer with nothing but JSON; it does not always comply, which
// is what the extract package is for.

const fixturesPromptTemplate = `List all football (soccer) matches for the %s scheduled on %s (Brasília Time Zone, UTC-3).
Format your response STRICTLY as a JSON array of objects. Each object must represent a match and have three keys: "homeTeam", "awayTeam", and "time".

CRUCIAL: The "time" MUST be the kickoff time converted to Brasília Time Zone (BRT, UTC-3) and formatted as HH:MM (24-hour clock).

For example:
[
  { "homeTeam": "Team A", "awayTeam": "Team B", "time": "19:00" },
  { "homeTeam": "Team C", "awayTeam": "Team D", "time": "21:45" }
]
If you cannot find any matches, return an empty array [].
VERY IMPORTANT: Do not include any text, explanation, or markdown formatting before or after the JSON array. Your response must be only the JSON.`

const analysisPromptTemplate = `First, determine if the football match between %[1]s (home) and %[2]s (away) in the %[3]s (%[4]s) on %[5]s has already been completed.

Your response must be STRICTLY a JSON object. Do not include any text, explanation, or markdown formatting.

Case 1: The match is already FINISHED.
Return a JSON object with this structure:
{
  "matchStatus": "finished",
  "finalScore": "The final score, e.g., '%[1]s 3 - 1 %[2]s'",
  "teamA": { "name": "%[1]s", "form": "Pre-match form string (W/D/L)" },
  "teamB": { "name": "%[2]s", "form": "Pre-match form string (W/D/L)" },
  "h2h": { "match": "Result of the most recent head-to-head match before this one." },
  "matchStats": {
    "shotsOnTarget": { "teamA": a number, "teamB": a number },
    "possession": { "teamA": a percentage, "teamB": a percentage },
    "corners": { "teamA": a number, "teamB": a number },
    "fouls": { "teamA": a number, "teamB": a number },
    "yellowCards": { "teamA": a number, "teamB": a number },
    "redCards": { "teamA": a number, "teamB": a number }
  }
}

Case 2: The match is UPCOMING (not yet finished).
Provide a predictive analysis for sports betting in %[6]s. Fetch data for the last 5 official games for each team and the most recent head-to-head (H2H) match.

IMPORTANT: If the most recent H2H match is too old (e.g., played more than 2 years ago) or lacks sufficient statistical data to be relevant, you MUST base your predictive analysis solely on the recent form and stats of the teams (last 5 games). In such cases, the "h2h" field can contain a brief note about the lack of data (like "No recent H2H encounters"), and the "stats" sub-object under "h2h" should be omitted. The "probabilities" MUST be calculated without relying on the old H2H data.

Return a JSON object with this structure:
{
  "matchStatus": "upcoming",
  "teamA": {
    "name": "%[1]s",
    "form": "Last 5 matches (e.g., 'W-D-L-W-W')",
    "avgGoalsScored": a number, "avgGoalsConceded": a number, "avgCorners": a number, "avgYellowCards": a number, "avgRedCards": a number, "avgFouls": a number, "avgShots": a number
  },
  "teamB": {
    "name": "%[2]s",
    "form": "Last 5 matches (e.g., 'L-D-W-W-D')",
    "avgGoalsScored": a number, "avgGoalsConceded": a number, "avgCorners": a number, "avgYellowCards": a number, "avgRedCards": a number, "avgFouls": a number, "avgShots": a number
  },
  "h2h": {
    "match": "Most recent H2H result string, or a note if no relevant H2H exists.",
    "stats": { "shotsOnTarget": { "teamA": a number, "teamB": a number }, "possession": { "teamA": a percentage, "teamB": a percentage }, "corners": { "teamA": a number, "teamB": a number }, "fouls": { "teamA": a number, "teamB": a number }, "yellowCards": { "teamA": a number, "teamB": a number }, "redCards": { "teamA": a number, "teamB": a number } }
  },
  "probabilities": {
    "matchWinner": { "homeWin": percentage, "draw": percentage, "awayWin": percentage },
    "overUnder25": { "over": percentage, "under": percentage },
    "btts": { "yes": percentage, "no": percentage },
    "doubleChance": { "homeOrDraw": percentage, "awayOrDraw": percentage, "homeOrAway": percentage },
    "drawNoBet": { "homeWin": percentage, "awayWin": percentage },
    "overUnderGoals": { "over15": percentage, "under15": percentage, "over35": percentage, "under35": percentage },
    "resultAndOver25": { "homeAndOver": percentage, "homeAndUnder": percentage, "awayAndOver": percentage, "awayAndUnder": percentage },
    "asianHandicap": { "homeMinus15": percentage, "awayPlus15": percentage },
    "correctScore": [ { "score": "1-0", "probability": percentage }, { "score": "2-1", "probability": percentage }, { "score": "1-1", "probability": percentage } ],
    "firstTeamToScore": { "home": percentage, "away": percentage, "none": percentage },
    "htft": { "homeHome": percentage, "homeDraw": percentage, "homeAway": percentage, "drawHome": percentage, "drawDraw": percentage, "drawAway": percentage, "awayHome": percentage, "awayDraw": percentage, "awayAway": percentage },
    "cornersOverUnder95": { "over": percentage, "under": percentage },
    "cardsOverUnder45": { "over": percentage, "under": percentage },
    "playerProps": {
      "shotsOnTargetOver05": { "playerName": "player with highest chance", "probability": percentage },
      "scoreAnytime": { "playerName": "player with highest chance", "probability": percentage },
      "assistAnytime": { "playerName": "player with highest chance", "probability": percentage }
    }
  }
}`

// narrativeLanguage maps a language code to the wording used in the prompt.
// Only narrative text is affected; the JSON schema is language-independent.
func narrativeLanguage(code string) string {
	switch code {
	case "pt":
		return "Portuguese (Brazil)"
	default:
		return "English"
	}
}

func fixturesPrompt(competition, date string) string {
	return fmt.Sprintf(fixturesPromptTemplate, competition, date)
}

func analysisPrompt(req MatchRequest) string {
	return fmt.Sprintf(analysisPromptTemplate,
		req.HomeTeam,
		req.AwayTeam,
		req.Competition,
		req.Country,
		req.Date,
		narrativeLanguage(req.Language),
	)
}
