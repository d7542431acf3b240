// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
EvalProject API.

# Domain Types

  - Project: a student project, assigned to a field of study
  - Rating: one evaluation of a project across four criteria
  - Comment: free-text feedback attached to a project

Ratings and comments are keyed by (project_id, user_session), where the
user session is the anonymous identifier produced by the votesec package.
The UserSession field is never serialized in responses.

# Rating Criteria

Each rating scores four criteria on a 1-5 star scale:

  - presentation: quality of the presentation
  - technical: technical merit
  - innovation: originality
  - overall: global score (required; the others may be zero when skipped)

# Fields of Study

Projects belong to one of five fields: informatique, genie-civil,
electronique, mecanique, gestion. Use IsValidField to validate input.
*/
package models
