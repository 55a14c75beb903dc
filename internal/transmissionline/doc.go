// Package transmissionline models the externally owned inputs of a
// sag-tension computation: weathercases, the cable specification, the
// constraint a cable is tensioned to, and the line cable that ties them to a
// ruling span. It also converts weathercases into cable unit loads.
package transmissionline
