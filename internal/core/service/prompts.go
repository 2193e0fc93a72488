package service

import "fmt"

// The analyzer prompts are fixed instruction templates; the extracted report
// text is appended after an "Audit Report:" marker. Each template spells out
// the exact JSON shape the model must return, which the service then enforces.

const summaryPrompt = `Please summarize the following audit report and return the result in JSON format with the fields: "summary", "keyFinding"(in numbers),"riskAreas"(in numbers) and "complianceScore"(in percentage).Please provide the summary in more than 800 words.`

const analysisPrompt = `Generate a JSON object representing an audit report analysis based on the audit findings. The report should include the following fields:

    1. "overallScore" (a numerical score between 0 and 100 representing the overall performance).
    2. "riskLevel" (a string indicating the risk level: "Low", "Medium", or "High").
    3. "keyFindings" (an array of strings summarizing significant observations from the audit).
    4. "metrics" (an array of objects, where each object contains:
       - "name" (the name of the metric, e.g., Security Policy Compliance, Incident Response Effectiveness),
       - "score" (a numerical score between 0 and 100 for each metric).

    The response should be a valid JSON object without any additional text or formatting. Provide a well-rounded analysis based on typical audit findings.`

const suggestionsPrompt = `Generate a list of actionable suggestions for improving our organizational practices. Each suggestion should include the following fields: "id" (a unique identifier starting from 1), "category" (the area of focus, e.g., Risk Management, Compliance, Financial Controls), "suggestion" (a detailed description of the suggestion), "impact" (the impact level of the suggestion: High, Medium, or Low), and "effort" (the effort level required to implement the suggestion: High, Medium, or Low). Please format the response as a JSON array of objects.

    Here are some example categories:
    1. Risk Management
    2. Compliance
    3. Financial Controls

    Please provide at least three suggestions.`

const insightsPrompt = `Generate a detailed JSON object containing insights based on the provided audit report. The insights should include the following fields:

    1. "compliance" (an array of objects, where each object represents a compliance metric with:
        - "name" (the name of the compliance metric, e.g., Security Policy Compliance, Data Protection),
        - "score" (a numerical score between 0 and 100 for each metric).
    2. "risk" (an array of objects, where each object represents a risk category with:
        - "name" (the name of the risk category, e.g., Data Breach Risk, Insider Threat Risk),
        - "value" (a numerical value representing the level of risk for that category, where higher values represent higher risk).
    3. "vulnerabilities" (an array of objects, where each object represents a vulnerability with:
        - "name" (the name of the vulnerability, e.g., Unpatched Software, Misconfigured Firewall),
        - "count" (a numerical value representing the number of occurrences of the vulnerability).
    4. "trend" (an array of objects, where each object represents a trend over the last few months with:
        - "month" (the name of the month, e.g., January, February),
        - "incidents" (a numerical value representing the number of security incidents in that month).

    The response should be a well-structured JSON object with the above fields, without any additional text or formatting. Analyze the audit findings and provide insights for each of the fields based on typical audit data.`

const visualizationPrompt = `Generate a JSON object that contains two properties:

    1. "sampleData": an array of objects representing monthly performance data. Each object should include the following fields:
    - "name" (a string representing the month, e.g., "Jan", "Feb", "Mar").
    - "value" (a numerical value representing a performance metric for that month, which can vary based on the audit report).

    The number of months included can vary but must contain at least six months of data. Ensure that the months can be represented in any order (not necessarily sequential).

    2. "colors": an array of strings representing color codes in hexadecimal format. The colors should correspond to the monthly performance data.

    Ensure that the response is formatted as valid JSON without any additional text or formatting.`

// buildPrompt joins an instruction template with the report text.
func buildPrompt(template, report string) string {
	return fmt.Sprintf("%s\n\nAudit Report:\n%s", template, report)
}
