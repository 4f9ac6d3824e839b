// Package scraper provides HTTP fetching and HTML parsing for the BVV
// beach tournament page.
//
// The scraper fetches the public tournament listing for a given year
// from volleyball.bayern and extracts the raw row tuples (class label,
// date, location, playing style, number of teams). Only tournament
// class boxes selected in the user's configuration are visited. The
// rows are handed to the tournament package untouched; filtering by
// playing style and record construction happen there.
package scraper
